package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"canteen-system/internal/app"
	"canteen-system/internal/common/logger"
	"canteen-system/internal/config"
)

// The binary is a bootstrap harness: it brings the core up against the
// configured store, reports its state and exits. The ordering surface
// itself lives behind the app's component APIs and is driven by an
// embedding presentation layer.
func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "path to YAML config")
	flag.Parse()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New("canteen-system", cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("startup_failed", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	snap := a.Stats.Snapshot(ctx)
	log.Info("state_snapshot",
		zap.Float64("revenue", snap.Revenue),
		zap.Int("orders", snap.Orders),
		zap.Int("pending", snap.Pending),
	)

	notifier := &app.LogNotifier{Log: log}
	notifier.Notify(fmt.Sprintf("Canteen core ready: %d menu items, %d orders on the ledger.",
		len(a.Catalog.List(ctx)), snap.Orders), "success")
}
