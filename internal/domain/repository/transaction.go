package repository

import "context"

// TransactionManager runs work inside a single store's transaction.
// A transaction never spans stores: cross-store writes are sequenced by the
// caller as independently committed steps.
type TransactionManager interface {
	// InIdentityStore runs fn in an identity store transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	InIdentityStore(ctx context.Context, fn func(repos IdentityRepositoryFactory) error) error

	// InTransactionStore runs fn in a transaction store transaction.
	InTransactionStore(ctx context.Context, fn func(repos TransactionRepositoryFactory) error) error
}

// IdentityRepositoryFactory returns identity store repositories bound to one transaction.
type IdentityRepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAddressRepository() AddressRepository
}

// TransactionRepositoryFactory returns transaction store repositories bound to one transaction.
type TransactionRepositoryFactory interface {
	NewOrderRepository() OrderRepository
	NewCouponRepository() CouponRepository
	NewPaymentRepository() PaymentRepository
	NewRefundRepository() RefundRepository
}
