package catalog

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-system/internal/domain"
	"canteen-system/internal/storage"
)

func newService(t *testing.T, store storage.Store) *CatalogService {
	t.Helper()
	return NewCatalogService(NewCatalogRepository(store))
}

func TestInitializeInstallsSeedOnFirstRun(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	cs := newService(t, store)
	require.NoError(t, cs.Initialize(ctx, DefaultSeed()))

	menu := cs.List(ctx)
	require.Len(t, menu, 4)
	assert.Equal(t, "Veg Fried Rice", menu[0].Name)

	// The seed must have been persisted.
	_, found, err := store.Get(ctx, storage.KeyMenu)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestInitializePrefersPersistedSnapshot(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	first := newService(t, store)
	require.NoError(t, first.Initialize(ctx, DefaultSeed()))
	added, err := first.AddItem(ctx, "Masala Dosa", 4.25, "Food", domain.DietVeg)
	require.NoError(t, err)

	// A fresh service over the same store restores the grown catalog, not
	// the seed.
	second := newService(t, store)
	require.NoError(t, second.Initialize(ctx, DefaultSeed()))
	menu := second.List(ctx)
	require.Len(t, menu, 5)

	got, found := second.Find(ctx, added.ID)
	require.True(t, found)
	assert.Equal(t, "Masala Dosa", got.Name)
}

func TestAddItemAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	cs := newService(t, storage.NewMemory())
	require.NoError(t, cs.Initialize(ctx, DefaultSeed()))

	a, err := cs.AddItem(ctx, "Lemon Tea", 2.00, "Beverage", domain.DietVeg)
	require.NoError(t, err)
	b, err := cs.AddItem(ctx, "Chicken Roll", 4.50, "Snack", domain.DietNonVeg)
	require.NoError(t, err)

	assert.Equal(t, 5, a.ID)
	assert.Equal(t, 6, b.ID)
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	cs := newService(t, storage.NewMemory())
	require.NoError(t, cs.Initialize(ctx, nil))

	tests := []struct {
		name  string
		item  string
		price float64
		diet  domain.DietType
	}{
		{"empty name", "", 2.00, domain.DietVeg},
		{"blank name", "   ", 2.00, domain.DietVeg},
		{"negative price", "Tea", -1.00, domain.DietVeg},
		{"NaN price", "Tea", math.NaN(), domain.DietVeg},
		{"positive infinite price", "Tea", math.Inf(1), domain.DietVeg},
		{"negative infinite price", "Tea", math.Inf(-1), domain.DietVeg},
		{"bad diet type", "Tea", 2.00, domain.DietType("vegan")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cs.AddItem(ctx, tc.item, tc.price, "Beverage", tc.diet)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, cs.List(ctx))
		})
	}
}

func TestFindMissingIsNormal(t *testing.T) {
	ctx := context.Background()
	cs := newService(t, storage.NewMemory())
	require.NoError(t, cs.Initialize(ctx, DefaultSeed()))

	_, found := cs.Find(ctx, 999)
	assert.False(t, found)
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	cs := newService(t, storage.NewMemory())
	require.NoError(t, cs.Initialize(ctx, DefaultSeed()))

	menu := cs.List(ctx)
	menu[0].Price = 99.0

	fresh, found := cs.Find(ctx, menu[0].ID)
	require.True(t, found)
	assert.InDelta(t, 5.50, fresh.Price, 1e-9)
}
