package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/lock"
	"storefront/internal/infra/qrcode"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *storeFixtures) orderService(publisher service.EventPublisher) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		TxManager: f.txManager,
		Orders:    f.orders,
		QRCode:    qrcode.NewQRCodeService(128, "M"),
		Publisher: publisher,
		Logger:    f.logger,
	})
}

// paidOrder runs a user through cart, checkout and payment.
func (f *storeFixtures) paidOrder(t *testing.T, user *entity.User) *usecase.PaymentResult {
	t.Helper()

	f.readyForPayment(t, user, "10")

	gateway := mockService.NewMockPaymentGateway(t)
	gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(chargeOf(1000), nil)

	result, err := f.paymentService(gateway, lock.NewIdempotencyStore(nil)).
		SubmitPayment(context.Background(), user.ID, &usecase.PaymentInput{Token: "tok_visa"})
	require.NoError(t, err)

	return result
}

func TestOrderService_RequestRefund(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	paid := f.paidOrder(t, user)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.Type == constants.EventRefundRequested && e.OrderID == paid.OrderID && e.RefCode == paid.RefCode
		})).
		Return(nil)

	refund, err := f.orderService(publisher).RequestRefund(ctx, &usecase.RefundInput{
		RefCode: paid.RefCode,
		Reason:  "Wrong size",
		Email:   "ann@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, paid.OrderID, refund.OrderID)
	assert.NotZero(t, refund.ID)

	order, err := f.orders.FindOrderByID(ctx, paid.OrderID)
	require.NoError(t, err)
	assert.True(t, order.RefundRequested)
	assert.False(t, order.RefundGranted)

	count, err := f.refunds.CountRefundsByOrder(ctx, paid.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOrderService_UpdateDelivery_ReceivedImpliesDelivered(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	paid := f.paidOrder(t, user)

	order, err := f.orderService(f.publisher).UpdateDelivery(ctx, paid.RefCode, &usecase.DeliveryInput{Received: true})

	require.NoError(t, err)
	assert.True(t, order.BeingDelivered)
	assert.True(t, order.Received)

	stored, err := f.orders.FindOrderByID(ctx, paid.OrderID)
	require.NoError(t, err)
	assert.True(t, stored.BeingDelivered)
	assert.True(t, stored.Received)
}

func TestOrderService_GetOrderQR(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	paid := f.paidOrder(t, user)

	png, err := f.orderService(f.publisher).GetOrderQR(ctx, user.ID, paid.RefCode)

	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
