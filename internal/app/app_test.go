package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteen-system/internal/common/logger"
	"canteen-system/internal/config"
	"canteen-system/internal/domain"
)

func memoryConfig() config.Config {
	cfg := config.Default()
	cfg.Storage.Driver = "memory"
	cfg.Insight.DelayMS = 0
	return cfg
}

func TestNewWiresTheCore(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, memoryConfig(), logger.NewNop())
	require.NoError(t, err)
	defer a.Close()

	// First run seeds the default menu and an empty ledger.
	assert.Len(t, a.Catalog.List(ctx), 4)
	assert.Empty(t, a.Ledger.AllOrders(ctx))
	assert.Zero(t, a.Stats.Snapshot(ctx).Revenue)
}

func TestFullOrderingFlow(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, memoryConfig(), logger.NewNop())
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Session.Login(ctx, "user", "123", domain.RoleCustomer)
	require.NoError(t, err)

	c := a.NewCart()
	rice, ok := a.Catalog.Find(ctx, 1)
	require.True(t, ok)
	c.Add(rice)
	c.Add(rice)

	order, err := a.Ledger.PlaceOrder(ctx, c)
	require.NoError(t, err)
	assert.InDelta(t, 11.00, order.Total, 1e-9)
	assert.Positive(t, order.Token)
	assert.Zero(t, c.Len())

	// Owner side: advance to completion and watch the aggregates.
	require.Equal(t, 1, a.Stats.PendingCount(ctx))
	for _, next := range []domain.Status{domain.StatusPreparing, domain.StatusReady, domain.StatusCompleted} {
		_, err := a.Ledger.AdvanceStatus(ctx, order.ID, next)
		require.NoError(t, err)
	}
	snap := a.Stats.Snapshot(ctx)
	assert.Zero(t, snap.Pending)
	assert.InDelta(t, 11.00, snap.Revenue, 1e-9)

	insights, err := a.Insight.Analyze(ctx)
	require.NoError(t, err)
	assert.Len(t, insights, 3)

	require.NoError(t, a.Session.Logout(ctx))
	_, ok, err = a.Session.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownDriverFails(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Driver = "redis"
	_, err := New(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}
