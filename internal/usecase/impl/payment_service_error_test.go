package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/lock"
	mockService "storefront/internal/mocks/service"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// failingTxManager fails every transaction store transaction.
type failingTxManager struct {
	repository.TransactionManager
	err error
}

func (m failingTxManager) InTransactionStore(context.Context, func(repository.TransactionRepositoryFactory) error) error {
	return m.err
}

func TestPaymentService_SubmitPayment_GatewayFailures(t *testing.T) {
	tests := []struct {
		name       string
		gatewayErr error
		wantErr    error
	}{
		{
			name:       "declined",
			gatewayErr: &service.PaymentError{Kind: service.PaymentErrorDeclined, Code: "card_declined", Message: "Your card was declined."},
			wantErr:    domainerrors.ErrCardDeclined,
		},
		{
			name:       "rejected",
			gatewayErr: &service.PaymentError{Kind: service.PaymentErrorRejected, Message: "Invalid API key"},
			wantErr:    domainerrors.ErrPaymentRejected,
		},
		{
			name:       "transient",
			gatewayErr: &service.PaymentError{Kind: service.PaymentErrorTransient, Message: "rate limited"},
			wantErr:    domainerrors.ErrPaymentRetryable,
		},
		{
			name:       "timeout",
			gatewayErr: context.DeadlineExceeded,
			wantErr:    domainerrors.ErrPaymentRetryable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoreFixtures(t)
			ctx := context.Background()
			user := f.seedUser(t, "ann@example.com")
			f.readyForPayment(t, user, "10")

			gateway := mockService.NewMockPaymentGateway(t)
			gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(nil, tt.gatewayErr)

			_, err := f.paymentService(gateway, lock.NewIdempotencyStore(nil)).
				SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})

			assert.ErrorIs(t, err, tt.wantErr)

			open, err := f.orders.FindOpenOrders(ctx, user.ID)
			require.NoError(t, err)
			assert.Len(t, open, 1, "a failed charge leaves the order open")
		})
	}
}

func TestPaymentService_SubmitPayment_DeclineCarriesGatewayMessage(t *testing.T) {
	f := newStoreFixtures(t)
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(nil, &service.PaymentError{Kind: service.PaymentErrorDeclined, Message: "Insufficient funds."})

	_, err := f.paymentService(gateway, lock.NewIdempotencyStore(nil)).
		SubmitPayment(context.Background(), user.ID, &usecase.PaymentInput{Token: "tok_visa"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Insufficient funds.", appErr.Details())
}

func TestPaymentService_SubmitPayment_AddressesRequired(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.seedItem(t, "tee", "10")
	_, err := f.cartService().AddItem(ctx, user.ID, "tee")
	require.NoError(t, err)

	svc := f.paymentService(mockService.NewMockPaymentGateway(t), lock.NewIdempotencyStore(nil))

	_, err = svc.SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})
	assert.ErrorIs(t, err, domainerrors.ErrBillingAddressRequired)

	open, err := f.orders.FindOpenOrders(ctx, user.ID)
	require.NoError(t, err)
	billing := f.seedAddress(t, user.ID, entity.AddressTypeBilling, false)
	require.NoError(t, f.orders.SetAddresses(ctx, open[0].ID, nil, &billing.ID))

	_, err = svc.SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})
	assert.ErrorIs(t, err, domainerrors.ErrAddressesRequired)
}

func TestPaymentService_SubmitPayment_NoActiveOrder(t *testing.T) {
	f := newStoreFixtures(t)
	user := f.seedUser(t, "ann@example.com")

	_, err := f.paymentService(mockService.NewMockPaymentGateway(t), lock.NewIdempotencyStore(nil)).
		SubmitPayment(context.Background(), user.ID, &usecase.PaymentInput{Token: "tok_visa"})

	assert.ErrorIs(t, err, domainerrors.ErrNoActiveOrder)
}

func TestPaymentService_SubmitPayment_ZeroTotalNotCharged(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "5")
	f.seedCoupon(t, "ALL", "50")
	_, err := f.cartService().ApplyCoupon(ctx, user.ID, "ALL")
	require.NoError(t, err)

	// No Charge expectation: the mock fails the test if the gateway is called.
	gateway := mockService.NewMockPaymentGateway(t)

	_, err = f.paymentService(gateway, lock.NewIdempotencyStore(nil)).
		SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotChargeable)
}

func TestPaymentService_SubmitPayment_MissingToken(t *testing.T) {
	f := newStoreFixtures(t)
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")
	svc := f.paymentService(mockService.NewMockPaymentGateway(t), lock.NewIdempotencyStore(nil))

	_, err := svc.SubmitPayment(context.Background(), user.ID, &usecase.PaymentInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.SubmitPayment(context.Background(), user.ID, &usecase.PaymentInput{UseDefault: true})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_SubmitPayment_MissingCatalogItem(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")

	open, err := f.orders.FindOpenOrders(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, f.orders.CreateLine(ctx, &entity.OrderItem{UserID: user.ID, ItemID: 4242, Quantity: 1}))
	line, err := f.orders.FindUnorderedLine(ctx, user.ID, 4242)
	require.NoError(t, err)
	require.NoError(t, f.orders.LinkLine(ctx, open[0].ID, line.ID))

	_, err = f.paymentService(mockService.NewMockPaymentGateway(t), lock.NewIdempotencyStore(nil)).
		SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})

	assert.ErrorIs(t, err, domainerrors.ErrConsistencyFault)
}

func TestPaymentService_SubmitPayment_RefundsWhenOrderCannotComplete(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(chargeOf(1000), nil)
	gateway.EXPECT().RefundCharge(mock.Anything, "ch_test").Return(nil)

	tx := failingTxManager{TransactionManager: f.txManager, err: errors.New("connection reset")}
	_, err := f.paymentServiceWithTx(tx, gateway, lock.NewIdempotencyStore(nil)).
		SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentRetryable)
}

func TestPaymentService_SubmitPayment_FailedRefundIsConsistencyFault(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(chargeOf(1000), nil)
	gateway.EXPECT().RefundCharge(mock.Anything, "ch_test").
		Return(&service.PaymentError{Kind: service.PaymentErrorTransient, Message: "unavailable"})

	tx := failingTxManager{TransactionManager: f.txManager, err: errors.New("connection reset")}
	_, err := f.paymentServiceWithTx(tx, gateway, lock.NewIdempotencyStore(nil)).
		SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})

	assert.ErrorIs(t, err, domainerrors.ErrConsistencyFault)
}

func TestPaymentService_SubmitPayment_InProgress(t *testing.T) {
	f := newStoreFixtures(t)
	user := f.seedUser(t, "ann@example.com")

	idem := mockService.NewMockIdempotencyStore(t)
	idem.EXPECT().Begin(mock.Anything, "payment:1:key-1", mock.Anything).
		Return(nil, false, service.ErrIdempotencyInProgress)

	_, err := f.paymentService(mockService.NewMockPaymentGateway(t), idem).
		SubmitPayment(context.Background(), user.ID, &usecase.PaymentInput{Token: "tok_visa", IdempotencyKey: "key-1"})

	assert.ErrorIs(t, err, domainerrors.ErrPaymentInProgress)
}

func TestPaymentService_SubmitPayment_FailureReleasesKey(t *testing.T) {
	f := newStoreFixtures(t)
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Return(nil, &service.PaymentError{Kind: service.PaymentErrorDeclined})

	idem := mockService.NewMockIdempotencyStore(t)
	idem.EXPECT().Begin(mock.Anything, "payment:1:key-1", mock.Anything).Return(nil, true, nil)
	idem.EXPECT().Abandon(mock.Anything, "payment:1:key-1").Return(nil)

	_, err := f.paymentService(gateway, idem).
		SubmitPayment(context.Background(), user.ID, &usecase.PaymentInput{Token: "tok_visa", IdempotencyKey: "key-1"})

	assert.ErrorIs(t, err, domainerrors.ErrCardDeclined)
}

func TestPaymentService_SubmitPayment_CartChangedAfterLockExpired(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	locker := lock.NewCartLocker(client, 200*time.Millisecond, f.logger)
	cart := f.cartServiceWithLocker(locker)

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().Charge(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req service.ChargeRequest) {
			assert.Equal(t, int64(1000), req.AmountCents)

			// The charge outlives the cart lock and the cart grows meanwhile.
			server.FastForward(time.Second)
			_, err := cart.AddItem(ctx, user.ID, "tee")
			require.NoError(t, err)
		}).
		Return(chargeOf(1000), nil)
	gateway.EXPECT().RefundCharge(mock.Anything, "ch_test").Return(nil)

	_, err := f.paymentServiceWithLocker(gateway, locker).
		SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})

	require.ErrorIs(t, err, domainerrors.ErrCartChanged)

	open, err := f.orders.FindOpenOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, open, 1, "the changed order stays open")
	assert.Nil(t, open[0].PaymentID)

	lines, err := f.orders.FindOrderLines(ctx, open[0].ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.False(t, lines[0].Ordered)
}

func TestVerifyChargedCart(t *testing.T) {
	couponID := uint(7)
	charged := func() *entity.Order {
		return &entity.Order{
			ID:       1,
			CouponID: &couponID,
			Lines: []*entity.OrderItem{
				{ID: 10, ItemID: 100, Quantity: 1},
				{ID: 11, ItemID: 101, Quantity: 3},
			},
		}
	}

	tests := []struct {
		name    string
		current *entity.Order
		lockErr error
		lines   []*entity.OrderItem
		wantErr error
	}{
		{
			name:    "unchanged",
			current: charged(),
			lines:   charged().Lines,
		},
		{
			name:    "paid meanwhile",
			lockErr: repository.ErrOrderAlreadyOrdered,
			wantErr: repository.ErrOrderAlreadyOrdered,
		},
		{
			name:    "coupon removed",
			current: &entity.Order{ID: 1},
			wantErr: errCartChanged,
		},
		{
			name:    "quantity changed",
			current: charged(),
			lines:   []*entity.OrderItem{{ID: 10, ItemID: 100, Quantity: 1}, {ID: 11, ItemID: 101, Quantity: 2}},
			wantErr: errCartChanged,
		},
		{
			name:    "line removed",
			current: charged(),
			lines:   []*entity.OrderItem{{ID: 10, ItemID: 100, Quantity: 1}},
			wantErr: errCartChanged,
		},
		{
			name:    "line swapped",
			current: charged(),
			lines:   []*entity.OrderItem{{ID: 10, ItemID: 100, Quantity: 1}, {ID: 12, ItemID: 102, Quantity: 3}},
			wantErr: errCartChanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			orders := mockRepo.NewMockOrderRepository(t)
			orders.EXPECT().LockOpenOrder(ctx, uint(1)).Return(tt.current, tt.lockErr)
			if tt.lines != nil {
				orders.EXPECT().FindOrderLines(ctx, uint(1)).Return(tt.lines, nil)
			}

			err := verifyChargedCart(ctx, orders, charged())
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
