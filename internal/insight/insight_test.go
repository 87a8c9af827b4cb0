package insight

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-system/internal/cart"
	"canteen-system/internal/catalog"
	"canteen-system/internal/ledger"
	"canteen-system/internal/stats"
	"canteen-system/internal/storage"
)

func fixture(t *testing.T, orderTotals ...float64) (*stats.Service, *catalog.CatalogService) {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemory()

	cat := catalog.NewCatalogService(catalog.NewCatalogRepository(store))
	require.NoError(t, cat.Initialize(ctx, catalog.DefaultSeed()))

	led := ledger.NewLedgerService(ledger.NewLedgerRepository(store))
	require.NoError(t, led.Initialize(ctx))
	for _, total := range orderTotals {
		item, ok := cat.Find(ctx, 1)
		require.True(t, ok)
		item.Price = total // carted copy only; the catalog is untouched
		c := cart.New()
		c.Add(item)
		_, err := led.PlaceOrder(ctx, c)
		require.NoError(t, err)
	}
	return stats.NewService(led), cat
}

func TestAnalyzeHighRevenueBranch(t *testing.T) {
	st, cat := fixture(t, 60.00)
	a := NewTemplated(st, cat, 0)

	insights, err := a.Analyze(context.Background())
	require.NoError(t, err)
	require.Len(t, insights, 3)
	assert.Contains(t, insights[0], "Financial Analysis")
	assert.Contains(t, insights[0], "$60.00")
	assert.Contains(t, insights[1], `"Food"`)
	assert.Contains(t, insights[2], "Operational Efficiency")
}

func TestAnalyzeLowRevenueBranch(t *testing.T) {
	st, cat := fixture(t) // no orders, revenue 0
	a := NewTemplated(st, cat, 0)

	insights, err := a.Analyze(context.Background())
	require.NoError(t, err)
	require.Len(t, insights, 3)
	assert.Contains(t, insights[0], "Financial Alert")
	assert.Contains(t, insights[0], "Combo Offer")
}

func TestAnalyzeHonorsCancellation(t *testing.T) {
	st, cat := fixture(t)
	a := NewTemplated(st, cat, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := a.Analyze(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestStaticDouble(t *testing.T) {
	s := &Static{Insights: []string{"all good"}}
	insights, err := s.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"all good"}, insights)
}
