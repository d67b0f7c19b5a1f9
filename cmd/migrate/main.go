package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/dbrouter"
	"storefront/internal/infra/persistence/gormstore"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

func main() {
	_ = godotenv.Load()

	store := flag.String("store", "", "Migrate a single store (catalog, identity, transaction); empty migrates all")
	flag.Parse()

	if err := run(context.Background(), *store); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	stores, err := gormstore.Open(cfg.Stores, logger, cfg.Env.Debug)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := stores.Close(); closeErr != nil {
			logger.Error("Failed to close stores", slog.Any("error", closeErr))
		}
	}()

	if store == "" {
		return gormstore.Migrate(ctx, stores, logger)
	}

	target, err := parseStore(store)
	if err != nil {
		return err
	}

	return gormstore.MigrateStore(ctx, stores, target, logger)
}

func parseStore(name string) (dbrouter.Store, error) {
	for _, store := range dbrouter.Stores() {
		if string(store) == name {
			return store, nil
		}
	}

	return "", errors.Errorf("unknown store %q", name)
}
