package impl

import (
	"context"
	"regexp"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]{20}$`)
	seen := make(map[string]struct{})

	for i := 0; i < 200; i++ {
		code, err := newRefCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		seen[code] = struct{}{}
	}

	assert.Len(t, seen, 200)
}

func TestRetryOnDuplicate(t *testing.T) {
	t.Run("retries duplicates then gives up", func(t *testing.T) {
		calls := 0
		err := retryOnDuplicate(func() error {
			calls++

			return errors.Wrap(repository.ErrDuplicateRefCode, "insert")
		}, repository.ErrDuplicateRefCode)

		assert.ErrorIs(t, err, repository.ErrDuplicateRefCode)
		assert.Equal(t, maxDuplicateRetries+1, calls)
	})

	t.Run("stops on success", func(t *testing.T) {
		calls := 0
		err := retryOnDuplicate(func() error {
			calls++
			if calls == 1 {
				return repository.ErrDuplicateOpenOrder
			}

			return nil
		}, repository.ErrDuplicateOpenOrder, repository.ErrDuplicateOrderLine)

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := retryOnDuplicate(func() error {
			calls++

			return boom
		}, repository.ErrDuplicateRefCode)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}

func TestOrderAddressIDs(t *testing.T) {
	one, two := uint(1), uint(2)

	assert.Empty(t, orderAddressIDs(&entity.Order{}))
	assert.Equal(t, []uint{1}, orderAddressIDs(&entity.Order{ShippingAddressID: &one, BillingAddressID: &one}))
	assert.Equal(t, []uint{1, 2}, orderAddressIDs(&entity.Order{ShippingAddressID: &one, BillingAddressID: &two}))
	assert.Equal(t, []uint{2}, orderAddressIDs(&entity.Order{BillingAddressID: &two}))
}

func TestDropMissingAddresses(t *testing.T) {
	one, two := uint(1), uint(2)
	order := &entity.Order{ShippingAddressID: &one, BillingAddressID: &two}

	assert.False(t, dropMissingAddresses(order, []uint{3}))
	assert.True(t, dropMissingAddresses(order, []uint{2}))
	assert.Equal(t, &one, order.ShippingAddressID)
	assert.Nil(t, order.BillingAddressID)
}

func TestChunkIDs(t *testing.T) {
	assert.Nil(t, chunkIDs(nil, 2))
	assert.Equal(t, [][]uint{{1, 2}, {3}}, chunkIDs([]uint{1, 2, 3}, 2))
	assert.Equal(t, [][]uint{{1, 2}}, chunkIDs([]uint{1, 2}, 5))
}

func TestMissingIDs(t *testing.T) {
	assert.Equal(t, []uint{2, 4}, missingIDs([]uint{1, 2, 3, 4}, []uint{3, 1}))
	assert.Nil(t, missingIDs([]uint{1}, []uint{1}))
}

func TestCartService_AddItem_CanceledContext(t *testing.T) {
	f := newStoreFixtures(t)
	f.seedItem(t, "tee", "10")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.cartService().AddItem(ctx, 1, "tee")

	assert.Error(t, err)
}
