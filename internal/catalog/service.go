package catalog

import (
	"context"
	"fmt"
	"math"
	"strings"

	"canteen-system/internal/domain"
)

type CatalogServiceInterface interface {
	Initialize(ctx context.Context, seed []domain.MenuItem) error
	AddItem(ctx context.Context, name string, price float64, category string, diet domain.DietType) (domain.MenuItem, error)
	Find(ctx context.Context, id int) (domain.MenuItem, bool)
	List(ctx context.Context) []domain.MenuItem
}

// CatalogService owns the menu. Items are created by seed data or the
// owner's add-item action and never edited afterwards.
type CatalogService struct {
	repo  CatalogRepositoryInterface
	items []domain.MenuItem
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

func NewCatalogService(repo CatalogRepositoryInterface) *CatalogService {
	return &CatalogService{repo: repo}
}

// Initialize restores the persisted menu if one exists; otherwise it
// installs seed and persists it. Absence of a snapshot is the normal
// first-run case.
func (cs *CatalogService) Initialize(ctx context.Context, seed []domain.MenuItem) error {
	items, found, err := cs.repo.Load(ctx)
	if err != nil {
		return err
	}
	if found {
		cs.items = items
		return nil
	}
	cs.items = append([]domain.MenuItem(nil), seed...)
	return cs.repo.Save(ctx, cs.items)
}

// AddItem validates the input, assigns the next free identifier, appends
// the item and persists the catalog.
func (cs *CatalogService) AddItem(ctx context.Context, name string, price float64, category string, diet domain.DietType) (domain.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.MenuItem{}, fmt.Errorf("item name is required: %w", domain.ErrValidation)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return domain.MenuItem{}, fmt.Errorf("item price must be a finite number: %w", domain.ErrValidation)
	}
	if price < 0 {
		return domain.MenuItem{}, fmt.Errorf("item price must not be negative: %w", domain.ErrValidation)
	}
	if diet != domain.DietVeg && diet != domain.DietNonVeg {
		return domain.MenuItem{}, fmt.Errorf("invalid diet type %q: %w", diet, domain.ErrValidation)
	}

	item := domain.MenuItem{
		ID:       cs.nextID(),
		Name:     name,
		Price:    price,
		Category: category,
		Type:     diet,
		Img:      fmt.Sprintf("https://picsum.photos/seed/%s/300/200", name),
	}
	cs.items = append(cs.items, item)
	if err := cs.repo.Save(ctx, cs.items); err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}

// Find looks an item up by id. Not finding one is a normal outcome the
// caller handles, e.g. a stale cart reference.
func (cs *CatalogService) Find(_ context.Context, id int) (domain.MenuItem, bool) {
	for _, it := range cs.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.MenuItem{}, false
}

// List returns a copy of the menu in insertion order.
func (cs *CatalogService) List(_ context.Context) []domain.MenuItem {
	return append([]domain.MenuItem(nil), cs.items...)
}

// nextID is one past the highest existing id, so ids stay unique and
// monotonic regardless of what the seed used.
func (cs *CatalogService) nextID() int {
	max := 0
	for _, it := range cs.items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}
