package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCartService_AddItem_UnknownItem(t *testing.T) {
	f := newStoreFixtures(t)

	_, err := f.cartService().AddItem(context.Background(), 1, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCartService_AddItem_CartBusy(t *testing.T) {
	f := newStoreFixtures(t)
	f.seedItem(t, "blue-shirt", "10")

	locker := mockService.NewMockCartLocker(t)
	locker.EXPECT().Lock(mock.Anything, uint(1)).Return(nil, service.ErrLockNotAcquired)

	_, err := f.cartServiceWithLocker(locker).AddItem(context.Background(), 1, "blue-shirt")

	assert.ErrorIs(t, err, domainerrors.ErrCartBusy)
}

func TestCartService_RemoveItem_NoActiveOrder(t *testing.T) {
	f := newStoreFixtures(t)
	f.seedItem(t, "blue-shirt", "10")

	_, err := f.cartService().RemoveItem(context.Background(), 1, "blue-shirt")

	assert.ErrorIs(t, err, domainerrors.ErrNoActiveOrder)
}

func TestCartService_DecrementItem_NotInCart(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	f.seedItem(t, "blue-shirt", "10")
	f.seedItem(t, "red-shirt", "10")
	cart := f.cartService()

	_, err := cart.AddItem(ctx, 1, "blue-shirt")
	assert.NoError(t, err)

	_, err = cart.DecrementItem(ctx, 1, "red-shirt")

	assert.ErrorIs(t, err, domainerrors.ErrItemNotInCart)
}

func TestCartService_GetOpenOrder_NoActiveOrder(t *testing.T) {
	f := newStoreFixtures(t)

	_, err := f.cartService().GetOpenOrder(context.Background(), 1)

	assert.ErrorIs(t, err, domainerrors.ErrNoActiveOrder)
}

func TestCartService_ApplyCoupon_Errors(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	f.seedItem(t, "blue-shirt", "10")
	cart := f.cartService()

	_, err := cart.ApplyCoupon(ctx, 1, "NOPE")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveOrder)

	_, err = cart.AddItem(ctx, 1, "blue-shirt")
	assert.NoError(t, err)

	_, err = cart.ApplyCoupon(ctx, 1, "NOPE")
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)

	_, err = cart.ApplyCoupon(ctx, 1, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
