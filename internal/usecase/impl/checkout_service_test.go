package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_SubmitAddresses_NewWithSameBilling(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	f.seedItem(t, "tee", "10")
	_, err := f.cartService().AddItem(ctx, 1, "tee")
	require.NoError(t, err)

	summary, err := f.checkoutService().SubmitAddresses(ctx, 1, &usecase.CheckoutInput{
		Shipping:           &usecase.AddressInput{StreetAddress: "1 Main St", Country: "us", Zip: "10001"},
		SetDefaultShipping: true,
		SameBillingAddress: true,
		PaymentOption:      "stripe",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAddressesSet, summary.Status)
	require.NotNil(t, summary.Order.ShippingAddressID)
	require.NotNil(t, summary.Order.BillingAddressID)
	assert.NotEqual(t, *summary.Order.ShippingAddressID, *summary.Order.BillingAddressID)

	billing, err := f.addresses.FindAddressByID(ctx, *summary.Order.BillingAddressID)
	require.NoError(t, err)
	assert.Equal(t, entity.AddressTypeBilling, billing.Type)
	assert.Equal(t, "US", billing.Country)

	def, err := f.addresses.FindDefaultAddress(ctx, 1, entity.AddressTypeShipping)
	require.NoError(t, err)
	assert.Equal(t, *summary.Order.ShippingAddressID, def.ID)
}

func TestCheckoutService_SubmitAddresses_UsesDefaults(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	f.seedItem(t, "tee", "10")
	shipping := f.seedAddress(t, 1, entity.AddressTypeShipping, true)
	billing := f.seedAddress(t, 1, entity.AddressTypeBilling, true)
	_, err := f.cartService().AddItem(ctx, 1, "tee")
	require.NoError(t, err)

	summary, err := f.checkoutService().SubmitAddresses(ctx, 1, &usecase.CheckoutInput{
		UseDefaultShipping: true,
		UseDefaultBilling:  true,
		PaymentOption:      "stripe",
	})

	require.NoError(t, err)
	assert.Equal(t, shipping.ID, *summary.Order.ShippingAddressID)
	assert.Equal(t, billing.ID, *summary.Order.BillingAddressID)
}

func TestCheckoutService_SubmitAddresses_NewDefaultReplacesOld(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	f.seedItem(t, "tee", "10")
	old := f.seedAddress(t, 1, entity.AddressTypeBilling, true)
	_, err := f.cartService().AddItem(ctx, 1, "tee")
	require.NoError(t, err)

	summary, err := f.checkoutService().SubmitAddresses(ctx, 1, &usecase.CheckoutInput{
		Shipping:          &usecase.AddressInput{StreetAddress: "1 Main St", Country: "DE", Zip: "10115"},
		Billing:           &usecase.AddressInput{StreetAddress: "2 Side St", Country: "DE", Zip: "10117"},
		SetDefaultBilling: true,
		PaymentOption:     "stripe",
	})
	require.NoError(t, err)

	def, err := f.addresses.FindDefaultAddress(ctx, 1, entity.AddressTypeBilling)
	require.NoError(t, err)
	assert.Equal(t, *summary.Order.BillingAddressID, def.ID)
	assert.NotEqual(t, old.ID, def.ID)
}

func TestCheckoutService_GetCheckout_ClearsDanglingAddresses(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	f.seedItem(t, "tee", "10")
	shipping := f.seedAddress(t, 1, entity.AddressTypeShipping, true)
	_, err := f.cartService().AddItem(ctx, 1, "tee")
	require.NoError(t, err)

	open, err := f.orders.FindOpenOrders(ctx, 1)
	require.NoError(t, err)
	missing := uint(9999)
	require.NoError(t, f.orders.SetAddresses(ctx, open[0].ID, &shipping.ID, &missing))

	view, err := f.checkoutService().GetCheckout(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusOpen, view.Summary.Status)
	assert.Nil(t, view.Summary.Order.BillingAddressID)
	require.NotNil(t, view.DefaultShipping)
	assert.Equal(t, shipping.ID, view.DefaultShipping.ID)
	assert.Nil(t, view.DefaultBilling)

	stored, err := f.orders.FindOrderByID(ctx, open[0].ID)
	require.NoError(t, err)
	assert.Nil(t, stored.BillingAddressID)
	assert.Equal(t, shipping.ID, *stored.ShippingAddressID)
}
