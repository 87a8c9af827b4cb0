// Package app wires the canteen core together: one explicitly-owned
// instance per component instead of a single shared state object. The
// presentation layer holds an *App and calls into it; it owns rendering,
// toasts and navigation itself.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"canteen-system/internal/cart"
	"canteen-system/internal/catalog"
	"canteen-system/internal/config"
	"canteen-system/internal/insight"
	"canteen-system/internal/ledger"
	"canteen-system/internal/session"
	"canteen-system/internal/stats"
	"canteen-system/internal/storage"
)

type App struct {
	Catalog *catalog.CatalogService
	Ledger  *ledger.LedgerService
	Stats   *stats.Service
	Session *session.SessionService
	Insight insight.Analyzer

	store storage.Store
	log   *zap.Logger
}

// New opens the configured store, restores persisted state and builds the
// component graph. First run (nothing persisted) installs the default seed
// menu and an empty ledger.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	store, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat := catalog.NewCatalogService(catalog.NewCatalogRepository(store))
	if err := cat.Initialize(ctx, catalog.DefaultSeed()); err != nil {
		store.Close()
		return nil, fmt.Errorf("initialize catalog: %w", err)
	}

	led := ledger.NewLedgerService(ledger.NewLedgerRepository(store))
	if err := led.Initialize(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("initialize ledger: %w", err)
	}

	st := stats.NewService(led)

	a := &App{
		Catalog: cat,
		Ledger:  led,
		Stats:   st,
		// The session marker is deliberately non-durable; it must not
		// survive a restart.
		Session: session.NewSessionService(storage.NewMemory()),
		Insight: insight.NewTemplated(st, cat, cfg.Insight.Delay()),
		store:   store,
		log:     log,
	}

	log.Info("core_initialized",
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.Int("menu_items", len(cat.List(ctx))),
		zap.Int("orders", stats.Count(led.AllOrders(ctx))),
	)
	return a, nil
}

// NewCart hands the presentation layer a fresh, session-local cart.
func (a *App) NewCart() *cart.Cart { return cart.New() }

func (a *App) Close() error { return a.store.Close() }

func openStore(ctx context.Context, cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return storage.OpenSQLite(cfg.SQLite.Path)
	case "postgres":
		return storage.OpenPostgres(ctx, storage.PostgresConfig{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
		})
	case "memory":
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
