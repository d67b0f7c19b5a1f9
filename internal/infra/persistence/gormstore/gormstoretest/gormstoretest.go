// Package gormstoretest opens migrated SQLite stores for tests.
package gormstoretest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/infra/persistence/gormstore"

	"github.com/stretchr/testify/require"
)

// DSN returns a SQLite DSN for a file inside dir.
func DSN(dir, name string) string {
	return fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", filepath.Join(dir, name+".db"))
}

// Config returns a stores config with one SQLite file per store.
func Config(t *testing.T) config.StoresConfig {
	t.Helper()

	dir := t.TempDir()

	return config.StoresConfig{
		Driver:      constants.DriverSQLite,
		Catalog:     config.StoreConfig{DSN: DSN(dir, "catalog")},
		Identity:    config.StoreConfig{DSN: DSN(dir, "identity")},
		Transaction: config.StoreConfig{DSN: DSN(dir, "transaction")},
	}
}

// Open returns migrated stores that are closed when the test ends.
func Open(t *testing.T) *gormstore.Stores {
	t.Helper()

	stores, err := gormstore.Open(Config(t), nil, false)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = stores.Close()
	})

	require.NoError(t, gormstore.Migrate(context.Background(), stores, nil))

	return stores
}
