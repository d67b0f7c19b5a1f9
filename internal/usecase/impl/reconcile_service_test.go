package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileService_ReconcileAll_RepairsAndReports(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	item := f.seedItem(t, "tee", "10")

	// (a) open order pointing at a deleted address
	shipping := f.seedAddress(t, user.ID, entity.AddressTypeShipping, false)
	billing := f.seedAddress(t, user.ID, entity.AddressTypeBilling, false)
	open := &entity.Order{UserID: user.ID}
	require.NoError(t, f.orders.CreateOpenOrder(ctx, open))
	require.NoError(t, f.orders.SetAddresses(ctx, open.ID, &shipping.ID, &billing.ID))
	require.NoError(t, f.addresses.DeleteAddresses(ctx, []uint{billing.ID}))

	// (b) paid order whose line was never flipped
	paidUser := f.seedUser(t, "bob@example.com")
	paid := &entity.Order{UserID: paidUser.ID}
	require.NoError(t, f.orders.CreateOpenOrder(ctx, paid))
	line := &entity.OrderItem{UserID: paidUser.ID, ItemID: item.ID, Quantity: 1}
	require.NoError(t, f.orders.CreateLine(ctx, line))
	require.NoError(t, f.orders.LinkLine(ctx, paid.ID, line.ID))
	payment := &entity.Payment{ChargeID: "ch_ok", UserID: paidUser.ID, Amount: decimal.NewFromInt(10)}
	require.NoError(t, f.payments.CreatePayment(ctx, payment))
	require.NoError(t, f.orders.MarkOrderPaid(ctx, paid.ID, payment.ID, "abcdefghij0123456789", time.Now()))

	// (c) payment with no order
	orphan := &entity.Payment{ChargeID: "ch_orphan", UserID: user.ID, Amount: decimal.NewFromInt(5)}
	require.NoError(t, f.payments.CreatePayment(ctx, orphan))

	// (e) line for an item the catalog no longer has, owned by a user the identity store lacks
	ghost := &entity.Order{UserID: 999}
	require.NoError(t, f.orders.CreateOpenOrder(ctx, ghost))
	ghostLine := &entity.OrderItem{UserID: 999, ItemID: 4242, Quantity: 1}
	require.NoError(t, f.orders.CreateLine(ctx, ghostLine))
	require.NoError(t, f.orders.LinkLine(ctx, ghost.ID, ghostLine.ID))

	report, err := f.reconcileService().ReconcileAll(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, []uint{open.ID}, report.DanglingAddressOrders)
	assert.Equal(t, []uint{paid.ID}, report.RepairedLineOrders)
	assert.Equal(t, int64(1), report.LinesRepaired)
	assert.Equal(t, []uint{orphan.ID}, report.UnreferencedPayments)
	assert.Equal(t, []uint{4242}, report.MissingItems)
	assert.Equal(t, []uint{999}, report.MissingUsers)
	assert.Empty(t, report.MultipleOpenOrders)
	assert.Equal(t, 5, report.Faults())

	stored, err := f.orders.FindOrderByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, shipping.ID, *stored.ShippingAddressID)
	assert.Nil(t, stored.BillingAddressID)
	assert.Equal(t, entity.OrderStatusOpen, stored.Status())

	lines, err := f.orders.FindOrderLines(ctx, paid.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Ordered)

	again, err := f.reconcileService().ReconcileAll(ctx, 50)
	require.NoError(t, err)
	assert.Empty(t, again.DanglingAddressOrders)
	assert.Empty(t, again.RepairedLineOrders)
}

func TestReconcileService_ReconcileAll_PaidOrderAddressesOnlyReported(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	paid := f.paidOrder(t, user)

	order, err := f.orders.FindOrderByID(ctx, paid.OrderID)
	require.NoError(t, err)
	require.NoError(t, f.addresses.DeleteAddresses(ctx, []uint{*order.ShippingAddressID}))

	report, err := f.reconcileService().ReconcileAll(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint{paid.OrderID}, report.DanglingAddressOrders)

	stored, err := f.orders.FindOrderByID(ctx, paid.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.ShippingAddressID, stored.ShippingAddressID)
}

func TestReconcileService_ReconcileOrder(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	user := f.seedUser(t, "ann@example.com")
	paid := f.paidOrder(t, user)

	report, err := f.reconcileService().ReconcileOrder(ctx, paid.OrderID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.OrdersChecked)
	assert.Zero(t, report.Faults())
}
