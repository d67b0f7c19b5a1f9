package gormstore

import (
	"context"
	"log/slog"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/dbrouter"
	"storefront/internal/infra/persistence/model"
)

// partialIndexes enforce the single-row invariants the application relies on.
// Both PostgreSQL and SQLite support partial unique indexes.
var partialIndexes = map[dbrouter.Store][]string{
	dbrouter.StoreTransaction: {
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_one_open_per_user ON orders (user_id) WHERE ordered = false`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_order_items_one_open_line ON order_items (user_id, item_id) WHERE ordered = false`,
	},
	dbrouter.StoreIdentity: {
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_addresses_one_default ON addresses (user_id, address_type) WHERE is_default = true`,
	},
}

// Migrate creates the schema of every store. Each store receives only the
// tables the router assigns to it.
func Migrate(ctx context.Context, stores *Stores, logger *slog.Logger) error {
	for _, store := range dbrouter.Stores() {
		if err := MigrateStore(ctx, stores, store, logger); err != nil {
			return err
		}
	}

	return nil
}

// MigrateStore creates the tables and indexes owned by one store.
func MigrateStore(ctx context.Context, stores *Stores, store dbrouter.Store, logger *slog.Logger) error {
	db := stores.Store(store).WithContext(ctx)

	var models []any
	for _, m := range model.All() {
		if dbrouter.AllowMigrate(store, m) {
			models = append(models, m)
		}
	}

	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrapf(err, "failed to migrate %s store", store)
	}

	for _, stmt := range partialIndexes[store] {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to create index on %s store", store)
		}
	}

	if logger != nil {
		logger.InfoContext(ctx, "Store migrated",
			slog.String("store", string(store)),
			slog.Int("tables", len(models)),
			slog.Int("partialIndexes", len(partialIndexes[store])),
		)
	}

	return nil
}
