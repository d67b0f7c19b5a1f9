package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
)

func TestReconcileService_ReconcileOrder_NotFound(t *testing.T) {
	f := newStoreFixtures(t)

	_, err := f.reconcileService().ReconcileOrder(context.Background(), 12345)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestReconcileService_ReconcileAll_StopsOnStoreError(t *testing.T) {
	orders := mockRepo.NewMockOrderRepository(t)
	orders.EXPECT().ListOrdersWithAddresses(context.Background(), uint(0), 200).Return(nil, errors.New("db down"))

	svc := NewReconcileService(ReconcileServiceParams{
		Items:     mockRepo.NewMockItemRepository(t),
		Users:     mockRepo.NewMockUserRepository(t),
		Addresses: mockRepo.NewMockAddressRepository(t),
		Orders:    orders,
		Payments:  mockRepo.NewMockPaymentRepository(t),
		Logger:    discardLogger(),
	})

	_, err := svc.ReconcileAll(context.Background(), 0)

	assert.ErrorContains(t, err, "reconcile step dangling_addresses")
}

func TestReconcileService_ReconcileAll_CanceledContext(t *testing.T) {
	f := newStoreFixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.reconcileService().ReconcileAll(ctx, 10)

	assert.ErrorIs(t, err, context.Canceled)
}
