package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/lock"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func chargeOf(cents int64) *service.Charge {
	return &service.Charge{ID: "ch_test", AmountCents: cents}
}

func TestPaymentService_SubmitPayment_TokenCharge(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "25.50")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req service.ChargeRequest) bool {
			return req.AmountCents == 2550 && req.Token == "tok_visa" && req.CustomerRef == "" &&
				req.Currency == "usd" && req.IdempotencyKey != ""
		})).
		Return(chargeOf(2550), nil)

	result, err := f.paymentService(gateway, lock.NewIdempotencyStore(nil)).
		SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa"})

	require.NoError(t, err)
	assert.Len(t, result.RefCode, 20)
	assert.Equal(t, "ch_test", result.ChargeID)
	assert.True(t, decimal.RequireFromString("25.50").Equal(result.Amount))

	order, err := f.orders.FindOrderByRefCode(ctx, result.RefCode)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, order.Status())
	require.NotNil(t, order.PaymentID)

	payment, err := f.payments.FindPaymentByID(ctx, *order.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, "ch_test", payment.ChargeID)

	lines, err := f.orders.FindOrderLines(ctx, order.ID)
	require.NoError(t, err)
	for _, line := range lines {
		assert.True(t, line.Ordered)
	}

	count, err := f.cartService().CartLineCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPaymentService_SubmitPayment_SaveCardCreatesCustomer(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().CreateCustomer(mock.Anything, "ann@example.com", "tok_visa").Return("cus_1", nil)
	gateway.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req service.ChargeRequest) bool {
			return req.CustomerRef == "cus_1" && req.Token == ""
		})).
		Return(chargeOf(1000), nil)

	_, err := f.paymentService(gateway, lock.NewIdempotencyStore(nil)).
		SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_visa", Save: true})
	require.NoError(t, err)

	profile, err := f.users.FindProfileByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "cus_1", profile.PaymentCustomerRef)
	assert.True(t, profile.OneClickPurchasing)
}

func TestPaymentService_SubmitPayment_SaveCardAttachesToExistingCustomer(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	require.NoError(t, f.users.UpdateProfile(ctx, &entity.UserProfile{UserID: user.ID, PaymentCustomerRef: "cus_9", OneClickPurchasing: true}))
	f.readyForPayment(t, user, "10")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().AttachSource(mock.Anything, "cus_9", "tok_new").Return(nil)
	gateway.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req service.ChargeRequest) bool { return req.CustomerRef == "cus_9" })).
		Return(chargeOf(1000), nil)

	_, err := f.paymentService(gateway, lock.NewIdempotencyStore(nil)).
		SubmitPayment(ctx, user.ID, &usecase.PaymentInput{Token: "tok_new", Save: true})

	require.NoError(t, err)
}

func TestPaymentService_SubmitPayment_UseDefaultCard(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	require.NoError(t, f.users.UpdateProfile(ctx, &entity.UserProfile{UserID: user.ID, PaymentCustomerRef: "cus_9", OneClickPurchasing: true}))
	f.readyForPayment(t, user, "10")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req service.ChargeRequest) bool { return req.CustomerRef == "cus_9" })).
		Return(chargeOf(1000), nil)

	svc := f.paymentService(gateway, lock.NewIdempotencyStore(nil))

	view, err := svc.GetPayment(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, view.OneClickPurchasing)

	_, err = svc.SubmitPayment(ctx, user.ID, &usecase.PaymentInput{UseDefault: true})
	require.NoError(t, err)
}

func TestPaymentService_SubmitPayment_ReplaysCompletedKey(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "10")

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req service.ChargeRequest) bool { return req.IdempotencyKey == "key-1" })).
		Return(chargeOf(1000), nil).
		Once()

	svc := f.paymentService(gateway, lock.NewIdempotencyStore(client))
	input := &usecase.PaymentInput{Token: "tok_visa", IdempotencyKey: "key-1"}

	first, err := svc.SubmitPayment(ctx, user.ID, input)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	second, err := svc.SubmitPayment(ctx, user.ID, input)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.RefCode, second.RefCode)
	assert.Equal(t, first.OrderID, second.OrderID)
	assert.True(t, first.Amount.Equal(second.Amount))
}

func TestPaymentService_GetPayment_Summary(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	f.readyForPayment(t, user, "12.5")

	view, err := f.paymentService(mockService.NewMockPaymentGateway(t), lock.NewIdempotencyStore(nil)).GetPayment(ctx, user.ID)

	require.NoError(t, err)
	assert.False(t, view.OneClickPurchasing)
	assert.Equal(t, entity.OrderStatusAddressesSet, view.Summary.Status)
	assert.True(t, decimal.RequireFromString("12.5").Equal(view.Summary.Total))
}
