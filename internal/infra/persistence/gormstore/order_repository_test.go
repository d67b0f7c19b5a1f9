package gormstore_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/persistence/gormstore/gormstoretest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_SingleOpenOrderPerUser(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewOrderRepository(stores.Routed())

	require.NoError(t, repo.CreateOpenOrder(ctx, &entity.Order{UserID: 7}))
	assert.ErrorIs(t, repo.CreateOpenOrder(ctx, &entity.Order{UserID: 7}), repository.ErrDuplicateOpenOrder)
	require.NoError(t, repo.CreateOpenOrder(ctx, &entity.Order{UserID: 8}))

	open, err := repo.FindOpenOrders(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestOrderRepository_LineLifecycle(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewOrderRepository(stores.Routed())

	order := &entity.Order{UserID: 1}
	require.NoError(t, repo.CreateOpenOrder(ctx, order))

	line := &entity.OrderItem{UserID: 1, ItemID: 42}
	require.NoError(t, repo.CreateLine(ctx, line))
	assert.Equal(t, 1, line.Quantity)
	assert.ErrorIs(t, repo.CreateLine(ctx, &entity.OrderItem{UserID: 1, ItemID: 42}), repository.ErrDuplicateOrderLine)

	linked, err := repo.IsLineLinked(ctx, order.ID, line.ID)
	require.NoError(t, err)
	assert.False(t, linked)

	require.NoError(t, repo.LinkLine(ctx, order.ID, line.ID))
	require.NoError(t, repo.LinkLine(ctx, order.ID, line.ID))

	require.NoError(t, repo.AdjustLineQuantity(ctx, line.ID, 2))
	lines, err := repo.FindOrderLines(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	require.NoError(t, repo.DeleteLine(ctx, order.ID, line.ID))
	assert.ErrorIs(t, repo.DeleteLine(ctx, order.ID, line.ID), repository.ErrOrderLineNotFound)

	_, err = repo.FindUnorderedLine(ctx, 1, 42)
	assert.ErrorIs(t, err, repository.ErrOrderLineNotFound)
}

func TestOrderRepository_MarkOrderPaid(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewOrderRepository(stores.Routed())

	order := &entity.Order{UserID: 1}
	require.NoError(t, repo.CreateOpenOrder(ctx, order))
	line := &entity.OrderItem{UserID: 1, ItemID: 1}
	require.NoError(t, repo.CreateLine(ctx, line))
	require.NoError(t, repo.LinkLine(ctx, order.ID, line.ID))

	now := time.Now()
	require.NoError(t, repo.MarkOrderPaid(ctx, order.ID, 5, "abc123", now))
	assert.ErrorIs(t, repo.MarkOrderPaid(ctx, order.ID, 5, "abc124", now), repository.ErrOrderAlreadyOrdered)

	flipped, err := repo.MarkLinesOrdered(ctx, []uint{line.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), flipped)

	flipped, err = repo.MarkLinesOrdered(ctx, []uint{line.ID})
	require.NoError(t, err)
	assert.Zero(t, flipped)

	paid, err := repo.FindOrderByRefCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, paid.Status())
	require.NotNil(t, paid.PaymentID)
	assert.Equal(t, uint(5), *paid.PaymentID)

	// A paid order frees the slot for a new cart.
	require.NoError(t, repo.CreateOpenOrder(ctx, &entity.Order{UserID: 1}))

	other := &entity.Order{UserID: 2}
	require.NoError(t, repo.CreateOpenOrder(ctx, other))
	assert.ErrorIs(t, repo.MarkOrderPaid(ctx, other.ID, 6, "abc123", now), repository.ErrDuplicateRefCode)
}

func TestOrderRepository_LockOpenOrder(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewOrderRepository(stores.Routed())

	order := &entity.Order{UserID: 1}
	require.NoError(t, repo.CreateOpenOrder(ctx, order))

	locked, err := repo.LockOpenOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, locked.ID)
	assert.Equal(t, uint(1), locked.UserID)

	_, err = repo.LockOpenOrder(ctx, order.ID+100)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)

	require.NoError(t, repo.MarkOrderPaid(ctx, order.ID, 5, "abc123", time.Now()))
	_, err = repo.LockOpenOrder(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderAlreadyOrdered)
}

func TestOrderRepository_PostPaymentFlags(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewOrderRepository(stores.Routed())

	order := &entity.Order{UserID: 1}
	require.NoError(t, repo.CreateOpenOrder(ctx, order))

	assert.ErrorIs(t, repo.MarkRefundRequested(ctx, order.ID), repository.ErrOrderNotFound)

	require.NoError(t, repo.MarkOrderPaid(ctx, order.ID, 1, "ref", time.Now()))
	require.NoError(t, repo.MarkRefundRequested(ctx, order.ID))
	require.NoError(t, repo.UpdateDeliveryFlags(ctx, order.ID, true, false))

	got, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, got.RefundRequested)
	assert.True(t, got.BeingDelivered)
	assert.False(t, got.Received)
}

func TestOrderRepository_ReconciliationQueries(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewOrderRepository(stores.Routed())
	payments := gormstore.NewPaymentRepository(stores.Routed())

	shipping, billing := uint(10), uint(11)
	withAddr := &entity.Order{UserID: 1}
	require.NoError(t, repo.CreateOpenOrder(ctx, withAddr))
	require.NoError(t, repo.SetAddresses(ctx, withAddr.ID, &shipping, &billing))

	paid := &entity.Order{UserID: 2}
	require.NoError(t, repo.CreateOpenOrder(ctx, paid))
	line := &entity.OrderItem{UserID: 2, ItemID: 99}
	require.NoError(t, repo.CreateLine(ctx, line))
	require.NoError(t, repo.LinkLine(ctx, paid.ID, line.ID))

	payment := &entity.Payment{ChargeID: "ch_1", UserID: 2, Amount: decimal.NewFromInt(10)}
	require.NoError(t, payments.CreatePayment(ctx, payment))
	orphan := &entity.Payment{ChargeID: "ch_2", UserID: 3, Amount: decimal.NewFromInt(5)}
	require.NoError(t, payments.CreatePayment(ctx, orphan))
	require.NoError(t, repo.MarkOrderPaid(ctx, paid.ID, payment.ID, "paidref", time.Now()))

	listed, err := repo.ListOrdersWithAddresses(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, withAddr.ID, listed[0].ID)

	stale, err := repo.FindOrderedOrdersWithUnorderedLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{paid.ID}, stale)

	itemIDs, err := repo.FindDistinctLineItemIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{99}, itemIDs)

	unreferenced, err := payments.FindUnreferencedPayments(ctx)
	require.NoError(t, err)
	require.Len(t, unreferenced, 1)
	assert.Equal(t, "ch_2", unreferenced[0].ChargeID)

	multi, err := repo.FindUsersWithMultipleOpenOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, multi)
}

func TestCouponRepository(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewCouponRepository(stores.Routed())

	coupon := &entity.Coupon{Code: "FIVE", Amount: decimal.RequireFromString("5.00")}
	require.NoError(t, repo.CreateCoupon(ctx, coupon))
	assert.ErrorIs(t, repo.CreateCoupon(ctx, &entity.Coupon{Code: "FIVE"}), repository.ErrDuplicateCoupon)

	found, err := repo.FindCouponByCode(ctx, "FIVE")
	require.NoError(t, err)
	assert.True(t, found.Amount.Equal(decimal.NewFromInt(5)))

	_, err = repo.FindCouponByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, repository.ErrCouponNotFound)
}

func TestRefundRepository(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewRefundRepository(stores.Routed())

	require.NoError(t, repo.CreateRefund(ctx, &entity.Refund{OrderID: 3, Reason: "broken", Email: "a@b.c"}))

	count, err := repo.CountRefundsByOrder(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
