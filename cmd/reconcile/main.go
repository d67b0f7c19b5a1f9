package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// exitFaults is the exit status when the sweep found inconsistencies.
const exitFaults = 2

func main() {
	_ = godotenv.Load()

	batch := flag.Int("batch", 0, "Orders per page; 0 uses reconcile.batchSize from config")
	flag.Parse()

	report, err := run(context.Background(), *batch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reconcile: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "reconcile: %v\n", err)
		os.Exit(1)
	}

	if report.Faults() > 0 {
		os.Exit(exitFaults)
	}
}

func run(ctx context.Context, batch int) (*usecase.ReconcileReport, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	stores, err := gormstore.Open(cfg.Stores, logger, cfg.Env.Debug)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := stores.Close(); closeErr != nil {
			logger.Error("Failed to close stores", slog.Any("error", closeErr))
		}
	}()

	db := stores.Routed()
	reconcileUC := impl.NewReconcileService(impl.ReconcileServiceParams{
		Items:     gormstore.NewItemRepository(db),
		Users:     gormstore.NewUserRepository(db),
		Addresses: gormstore.NewAddressRepository(db),
		Orders:    gormstore.NewOrderRepository(db),
		Payments:  gormstore.NewPaymentRepository(db),
		Logger:    logger,
	})

	if batch <= 0 {
		batch = cfg.Reconcile.BatchSize
	}

	return reconcileUC.ReconcileAll(ctx, batch)
}
