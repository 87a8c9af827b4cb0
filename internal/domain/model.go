package domain

// DietType classifies a menu item for the veg/non-veg badge.
type DietType string

const (
	DietVeg    DietType = "veg"
	DietNonVeg DietType = "non-veg"
)

// MenuItem is a purchasable catalog entry. Items are immutable once
// created; there is no edit or delete operation.
type MenuItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category string   `json:"category"`
	Type     DietType `json:"type"`
	Img      string   `json:"img"`
}

// CartLine is a snapshot of a menu item taken at add-to-cart time plus a
// quantity. Later catalog changes never reach an existing line.
type CartLine struct {
	MenuItem
	Qty int `json:"qty"`
}

// Order is an immutable-at-creation record of a checkout. Only Status
// changes after creation, and only forward through the lifecycle.
type Order struct {
	ID     string     `json:"id"`
	Items  []CartLine `json:"items"`
	Total  float64    `json:"total"`
	Status Status     `json:"status"`
	Date   string     `json:"date"`
	Token  int        `json:"token"`
}

// Role selects which dashboard a user sees. It is a view selector, not a
// security boundary.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleCustomer Role = "customer"
)

// User is the session marker for the logged-in user.
type User struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}
