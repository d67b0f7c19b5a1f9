package gormstore

import (
	"context"
	"fmt"

	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/dbrouter"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface.
// Each transaction is pinned to one store through its named resolver.
type gormTransactionManager struct {
	db *gorm.DB
}

// identityRepositoryFactory hands out identity repositories bound to one transaction.
type identityRepositoryFactory struct {
	tx *gorm.DB
}

func (f *identityRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *identityRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

// transactionRepositoryFactory hands out transaction store repositories bound to one transaction.
type transactionRepositoryFactory struct {
	tx *gorm.DB
}

func (f *transactionRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *transactionRepositoryFactory) NewCouponRepository() repository.CouponRepository {
	return NewCouponRepository(f.tx)
}

func (f *transactionRepositoryFactory) NewPaymentRepository() repository.PaymentRepository {
	return NewPaymentRepository(f.tx)
}

func (f *transactionRepositoryFactory) NewRefundRepository() repository.RefundRepository {
	return NewRefundRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// InIdentityStore runs fn in an identity store transaction.
func (tm *gormTransactionManager) InIdentityStore(ctx context.Context, fn func(repos repository.IdentityRepositoryFactory) error) error {
	return tm.execute(ctx, dbrouter.StoreIdentity, func(tx *gorm.DB) error {
		return fn(&identityRepositoryFactory{tx: tx})
	})
}

// InTransactionStore runs fn in a transaction store transaction.
func (tm *gormTransactionManager) InTransactionStore(ctx context.Context, fn func(repos repository.TransactionRepositoryFactory) error) error {
	return tm.execute(ctx, dbrouter.StoreTransaction, func(tx *gorm.DB) error {
		return fn(&transactionRepositoryFactory{tx: tx})
	})
}

func (tm *gormTransactionManager) execute(ctx context.Context, store dbrouter.Store, fn func(tx *gorm.DB) error) error {
	// Use must precede Write: Write switches the connection as soon as it is applied.
	tx := tm.db.WithContext(ctx).
		Clauses(dbresolver.Use(string(store)), dbresolver.Write).
		Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin %s transaction: %w", store, tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit %s transaction: %w", store, err)
	}

	return nil
}
