package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"canteen-system/internal/domain"
	"canteen-system/internal/storage"
)

type CatalogRepositoryInterface interface {
	Load(ctx context.Context) ([]domain.MenuItem, bool, error)
	Save(ctx context.Context, items []domain.MenuItem) error
}

// CatalogRepository persists the menu snapshot as JSON under a single key,
// mirroring the original localStorage layout.
type CatalogRepository struct {
	store storage.Store
}

func NewCatalogRepository(store storage.Store) CatalogRepositoryInterface {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) Load(ctx context.Context) ([]domain.MenuItem, bool, error) {
	b, found, err := r.store.Get(ctx, storage.KeyMenu)
	if err != nil {
		return nil, false, fmt.Errorf("load menu: %w: %w", domain.ErrPersistence, err)
	}
	if !found {
		return nil, false, nil
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, false, fmt.Errorf("decode menu snapshot: %w: %w", domain.ErrPersistence, err)
	}
	return items, true, nil
}

func (r *CatalogRepository) Save(ctx context.Context, items []domain.MenuItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode menu snapshot: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyMenu, b); err != nil {
		return fmt.Errorf("save menu: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}
