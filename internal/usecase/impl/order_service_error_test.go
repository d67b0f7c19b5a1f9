package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_RequestRefund_UnknownCode(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	paid := f.paidOrder(t, user)

	_, err := f.orderService(mockService.NewMockEventPublisher(t)).RequestRefund(ctx, &usecase.RefundInput{
		RefCode: "zzzzzzzzzzzzzzzzzzzz",
		Reason:  "Wrong size",
		Email:   "ann@example.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	count, err := f.refunds.CountRefundsByOrder(ctx, paid.OrderID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrderService_RequestRefund_OpenOrderIsUnknown(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	f.seedItem(t, "tee", "10")
	_, err := f.cartService().AddItem(ctx, 1, "tee")
	require.NoError(t, err)

	// Only completed orders are reachable by reference code.
	_, err = f.orderService(mockService.NewMockEventPublisher(t)).RequestRefund(ctx, &usecase.RefundInput{
		RefCode: "aaaaaaaaaaaaaaaaaaaa",
		Reason:  "Changed my mind",
		Email:   "ann@example.com",
	})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_RequestRefund_Validation(t *testing.T) {
	svc := NewOrderService(OrderServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		Orders:    mockRepo.NewMockOrderRepository(t),
		QRCode:    mockService.NewMockQRCodeService(t),
		Publisher: mockService.NewMockEventPublisher(t),
		Logger:    discardLogger(),
	})

	_, err := svc.RequestRefund(context.Background(), &usecase.RefundInput{RefCode: "", Reason: " ", Email: "not-an-email"})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields(), 3)
}

func TestOrderService_GetOrderQR_OtherUser(t *testing.T) {
	f := newStoreFixtures(t)
	owner := f.seedUser(t, "ann@example.com")
	other := f.seedUser(t, "bob@example.com")
	paid := f.paidOrder(t, owner)

	_, err := f.orderService(f.publisher).GetOrderQR(context.Background(), other.ID, paid.RefCode)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateDelivery_UnknownCode(t *testing.T) {
	f := newStoreFixtures(t)

	_, err := f.orderService(f.publisher).UpdateDelivery(context.Background(), "zzzzzzzzzzzzzzzzzzzz", &usecase.DeliveryInput{BeingDelivered: true})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
