package catalog

import "canteen-system/internal/domain"

// DefaultSeed is the menu installed on first run when no snapshot exists.
func DefaultSeed() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 1, Name: "Veg Fried Rice", Price: 5.50, Category: "Food", Type: domain.DietVeg, Img: "https://picsum.photos/seed/rice/300/200"},
		{ID: 2, Name: "Chicken Burger", Price: 6.00, Category: "Snack", Type: domain.DietNonVeg, Img: "https://picsum.photos/seed/burger/300/200"},
		{ID: 3, Name: "Cold Coffee", Price: 3.00, Category: "Beverage", Type: domain.DietVeg, Img: "https://picsum.photos/seed/coffee/300/200"},
		{ID: 4, Name: "Samosa (2pc)", Price: 1.50, Category: "Snack", Type: domain.DietVeg, Img: "https://picsum.photos/seed/samosa/300/200"},
	}
}
