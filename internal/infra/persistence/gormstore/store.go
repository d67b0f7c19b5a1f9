// Package gormstore contains the GORM implementation of the persistence layer.
// Three physical stores sit behind one routed *gorm.DB; the dbresolver plugin
// sends every statement to the store the router assigns to its table.
package gormstore

import (
	"database/sql"
	"log/slog"
	"slices"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/dbrouter"
	"storefront/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Stores owns the connection of every store and the routed handle over them.
type Stores struct {
	routed  *gorm.DB
	byStore map[dbrouter.Store]*gorm.DB
}

// Routed returns the handle that sends each statement to the owning store.
// The fallback connection is the identity store.
func (s *Stores) Routed() *gorm.DB {
	return s.routed
}

// Store returns the direct handle of one store. Use it for migrations and
// raw SQL, which the resolver cannot attribute to a table.
func (s *Stores) Store(store dbrouter.Store) *gorm.DB {
	return s.byStore[store]
}

// SQLDB returns the pool of every store.
func (s *Stores) SQLDB() (map[dbrouter.Store]*sql.DB, error) {
	pools := make(map[dbrouter.Store]*sql.DB, len(s.byStore))
	for store, db := range s.byStore {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get %s sql.DB", store)
		}
		pools[store] = sqlDB
	}

	return pools, nil
}

// Close closes every store pool.
func (s *Stores) Close() error {
	pools, err := s.SQLDB()
	if err != nil {
		return err
	}

	var errs []error
	for _, store := range dbrouter.Stores() {
		if pool, ok := pools[store]; ok {
			if err := pool.Close(); err != nil {
				errs = append(errs, errors.Wrapf(err, "failed to close %s store", store))
			}
		}
	}

	return errors.Join(errs...)
}

// Open connects to the three stores and wires the resolver. SQL logs carry a
// "store" attribute naming the handle that ran the statement.
func Open(cfg config.StoresConfig, baseLogger *slog.Logger, debug bool) (*Stores, error) {
	dsns := map[dbrouter.Store]string{
		dbrouter.StoreCatalog:     cfg.Catalog.DSN,
		dbrouter.StoreIdentity:    cfg.Identity.DSN,
		dbrouter.StoreTransaction: cfg.Transaction.DSN,
	}

	stores := &Stores{byStore: make(map[dbrouter.Store]*gorm.DB, len(dsns))}
	for _, store := range dbrouter.Stores() {
		dialector, err := openDialector(cfg.Driver, dsns[store])
		if err != nil {
			return nil, err
		}

		db, err := gorm.Open(dialector, newGormConfig(newGormSlogLogger(storeLogger(baseLogger, string(store)), debug)))
		if err != nil {
			_ = stores.Close()

			return nil, errors.Wrapf(err, "failed to open %s store", store)
		}

		if err := applyPool(db, cfg.Pool); err != nil {
			_ = stores.Close()

			return nil, err
		}
		stores.byStore[store] = db
	}

	routedLogger := newGormSlogLogger(storeLogger(baseLogger, "routed"), debug)
	routed, err := newRouted(cfg.Driver, stores.byStore, newGormConfig(routedLogger))
	if err != nil {
		_ = stores.Close()

		return nil, err
	}
	stores.routed = routed

	return stores, nil
}

// newRouted builds a handle over the identity pool and registers one named
// resolver per store, bound to the models the router assigns to it.
func newRouted(driver string, byStore map[dbrouter.Store]*gorm.DB, gormCfg *gorm.Config) (*gorm.DB, error) {
	identityPool, err := byStore[dbrouter.StoreIdentity].DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get identity sql.DB")
	}

	routed, err := gorm.Open(connDialector(driver, identityPool), gormCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open routed handle")
	}

	partition := dbrouter.Partition(model.All()...)

	var resolver *dbresolver.DBResolver
	for _, store := range dbrouter.Stores() {
		pool, err := byStore[store].DB()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get %s sql.DB", store)
		}

		datas := slices.Concat(partition[store], []any{string(store)})
		cfg := dbresolver.Config{Sources: []gorm.Dialector{connDialector(driver, pool)}}
		if resolver == nil {
			resolver = dbresolver.Register(cfg, datas...)
		} else {
			resolver = resolver.Register(cfg, datas...)
		}
	}

	if err := routed.Use(resolver); err != nil {
		return nil, errors.Wrap(err, "failed to register store resolver")
	}

	return routed, nil
}

// newGormConfig returns a fresh config; gorm.Open keeps and mutates the pointer.
func newGormConfig(gormLogger logger.Interface) *gorm.Config {
	return &gorm.Config{
		// Explicit transactions go through the TransactionManager.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormLogger,
	}
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case constants.DriverPostgres:
		return postgres.Open(dsn), nil
	case constants.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, errors.Errorf("unknown store driver: %s", driver)
	}
}

// connDialector reuses an already opened pool.
func connDialector(driver string, pool *sql.DB) gorm.Dialector {
	if driver == constants.DriverSQLite {
		return &sqlite.Dialector{DriverName: sqlite.DriverName, Conn: pool}
	}

	return postgres.New(postgres.Config{Conn: pool})
}

func applyPool(db *gorm.DB, pool config.PoolConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	return nil
}
