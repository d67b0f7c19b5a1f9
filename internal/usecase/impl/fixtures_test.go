package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/lock"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/persistence/gormstore/gormstoretest"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// storeFixtures wires real SQLite stores behind the production repositories.
type storeFixtures struct {
	stores     *gormstore.Stores
	txManager  repository.TransactionManager
	items      repository.ItemRepository
	users      repository.UserRepository
	addresses  repository.AddressRepository
	orders     repository.OrderRepository
	coupons    repository.CouponRepository
	payments   repository.PaymentRepository
	refunds    repository.RefundRepository
	calculator *pricing.Calculator
	publisher  *mockService.MockEventPublisher
	logger     *slog.Logger
}

func newStoreFixtures(t *testing.T) *storeFixtures {
	t.Helper()

	stores := gormstoretest.Open(t)
	db := stores.Routed()

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return &storeFixtures{
		stores:     stores,
		txManager:  gormstore.NewTransactionManager(db),
		items:      gormstore.NewItemRepository(db),
		users:      gormstore.NewUserRepository(db),
		addresses:  gormstore.NewAddressRepository(db),
		orders:     gormstore.NewOrderRepository(db),
		coupons:    gormstore.NewCouponRepository(db),
		payments:   gormstore.NewPaymentRepository(db),
		refunds:    gormstore.NewRefundRepository(db),
		calculator: pricing.NewCalculator(true),
		publisher:  publisher,
		logger:     discardLogger(),
	}
}

func (f *storeFixtures) seedItem(t *testing.T, slug, price string) *entity.Item {
	t.Helper()

	item := &entity.Item{
		Title:    slug,
		Price:    decimal.RequireFromString(price),
		Category: entity.CategoryShirt,
		Label:    entity.LabelPrimary,
		Slug:     slug,
	}
	require.NoError(t, f.items.CreateItem(context.Background(), item))

	return item
}

func (f *storeFixtures) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()

	user := &entity.User{Name: "Test User", Email: email, PasswordHash: "hash"}
	require.NoError(t, f.users.CreateUser(context.Background(), user))

	return user
}

func (f *storeFixtures) seedCoupon(t *testing.T, code, amount string) *entity.Coupon {
	t.Helper()

	coupon := &entity.Coupon{Code: code, Amount: decimal.RequireFromString(amount)}
	require.NoError(t, f.coupons.CreateCoupon(context.Background(), coupon))

	return coupon
}

func (f *storeFixtures) seedAddress(t *testing.T, userID uint, addressType entity.AddressType, isDefault bool) *entity.Address {
	t.Helper()

	address := &entity.Address{
		UserID:        userID,
		StreetAddress: "1 Main St",
		Country:       "US",
		Zip:           "10001",
		Type:          addressType,
		IsDefault:     isDefault,
	}
	require.NoError(t, f.addresses.CreateAddress(context.Background(), address))

	return address
}

func (f *storeFixtures) cartService() usecase.CartUsecase {
	return f.cartServiceWithLocker(lock.NewLocalCartLocker())
}

func (f *storeFixtures) cartServiceWithLocker(locker service.CartLocker) usecase.CartUsecase {
	return NewCartService(CartServiceParams{
		TxManager:  f.txManager,
		Items:      f.items,
		Orders:     f.orders,
		Coupons:    f.coupons,
		Locker:     locker,
		Calculator: f.calculator,
		Logger:     f.logger,
	})
}

func (f *storeFixtures) checkoutService() usecase.CheckoutUsecase {
	return NewCheckoutService(CheckoutServiceParams{
		TxManager:  f.txManager,
		Items:      f.items,
		Orders:     f.orders,
		Coupons:    f.coupons,
		Addresses:  f.addresses,
		Publisher:  f.publisher,
		Calculator: f.calculator,
		Logger:     f.logger,
	})
}

func (f *storeFixtures) paymentService(gateway service.PaymentGateway, idempotency service.IdempotencyStore) usecase.PaymentUsecase {
	return f.paymentServiceWithTx(f.txManager, gateway, idempotency)
}

func (f *storeFixtures) paymentServiceWithTx(
	txManager repository.TransactionManager,
	gateway service.PaymentGateway,
	idempotency service.IdempotencyStore,
) usecase.PaymentUsecase {
	return f.newPaymentService(txManager, gateway, idempotency, lock.NewLocalCartLocker())
}

func (f *storeFixtures) paymentServiceWithLocker(gateway service.PaymentGateway, locker service.CartLocker) usecase.PaymentUsecase {
	return f.newPaymentService(f.txManager, gateway, lock.NewIdempotencyStore(nil), locker)
}

func (f *storeFixtures) newPaymentService(
	txManager repository.TransactionManager,
	gateway service.PaymentGateway,
	idempotency service.IdempotencyStore,
	locker service.CartLocker,
) usecase.PaymentUsecase {
	cfg := &config.Config{}
	cfg.Payment.Currency = "usd"
	cfg.Redis = &config.RedisConfig{IdempotencyTTL: time.Hour}

	return NewPaymentService(PaymentServiceParams{
		Config:      cfg,
		TxManager:   txManager,
		Items:       f.items,
		Orders:      f.orders,
		Coupons:     f.coupons,
		Addresses:   f.addresses,
		Users:       f.users,
		Gateway:     gateway,
		Locker:      locker,
		Idempotency: idempotency,
		Publisher:   f.publisher,
		Calculator:  f.calculator,
		Logger:      f.logger,
	})
}

func (f *storeFixtures) reconcileService() usecase.ReconcileUsecase {
	return NewReconcileService(ReconcileServiceParams{
		Items:     f.items,
		Users:     f.users,
		Addresses: f.addresses,
		Orders:    f.orders,
		Payments:  f.payments,
		Logger:    f.logger,
	})
}

// readyForPayment fills a cart for user and sets both addresses.
func (f *storeFixtures) readyForPayment(t *testing.T, user *entity.User, price string) *usecase.OrderSummary {
	t.Helper()
	ctx := context.Background()

	f.seedItem(t, "tee", price)
	_, err := f.cartService().AddItem(ctx, user.ID, "tee")
	require.NoError(t, err)

	summary, err := f.checkoutService().SubmitAddresses(ctx, user.ID, &usecase.CheckoutInput{
		Shipping:           &usecase.AddressInput{StreetAddress: "1 Main St", Country: "us", Zip: "10001"},
		SameBillingAddress: true,
		PaymentOption:      "stripe",
	})
	require.NoError(t, err)

	return summary
}
