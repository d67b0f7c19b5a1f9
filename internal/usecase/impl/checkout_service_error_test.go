package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutService_SubmitAddresses_Errors(t *testing.T) {
	valid := &usecase.AddressInput{StreetAddress: "1 Main St", Country: "US", Zip: "10001"}

	tests := []struct {
		name    string
		input   *usecase.CheckoutInput
		wantErr error
	}{
		{
			name:    "paypal",
			input:   &usecase.CheckoutInput{Shipping: valid, SameBillingAddress: true, PaymentOption: "paypal"},
			wantErr: domainerrors.ErrUnsupportedPaymentOption,
		},
		{
			name:    "unknown payment option",
			input:   &usecase.CheckoutInput{Shipping: valid, SameBillingAddress: true, PaymentOption: "cash"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "no default shipping",
			input:   &usecase.CheckoutInput{UseDefaultShipping: true, SameBillingAddress: true, PaymentOption: "stripe"},
			wantErr: domainerrors.ErrDefaultAddressNotFound,
		},
		{
			name:    "no default billing",
			input:   &usecase.CheckoutInput{Shipping: valid, UseDefaultBilling: true, PaymentOption: "stripe"},
			wantErr: domainerrors.ErrDefaultAddressNotFound,
		},
		{
			name: "bad country",
			input: &usecase.CheckoutInput{
				Shipping:           &usecase.AddressInput{StreetAddress: "1 Main St", Country: "USA", Zip: "10001"},
				SameBillingAddress: true,
				PaymentOption:      "stripe",
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing billing",
			input:   &usecase.CheckoutInput{Shipping: valid, PaymentOption: "stripe"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStoreFixtures(t)
			ctx := context.Background()
			f.seedItem(t, "tee", "10")
			_, err := f.cartService().AddItem(ctx, 1, "tee")
			require.NoError(t, err)

			_, err = f.checkoutService().SubmitAddresses(ctx, 1, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)

			existing, err := f.addresses.FindExistingAddressIDs(ctx, []uint{1, 2})
			require.NoError(t, err)
			assert.Empty(t, existing, "no address may be written on a rejected checkout")
		})
	}
}

func TestCheckoutService_SubmitAddresses_FieldErrors(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()
	f.seedItem(t, "tee", "10")
	_, err := f.cartService().AddItem(ctx, 1, "tee")
	require.NoError(t, err)

	_, err = f.checkoutService().SubmitAddresses(ctx, 1, &usecase.CheckoutInput{
		Shipping:           &usecase.AddressInput{Country: "U1"},
		SameBillingAddress: true,
		PaymentOption:      "stripe",
	})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields(), "shipping.street_address")
	assert.Contains(t, verr.Fields(), "shipping.zip")
	assert.Contains(t, verr.Fields(), "shipping.country")
}

func TestCheckoutService_NoActiveOrder(t *testing.T) {
	f := newStoreFixtures(t)
	ctx := context.Background()

	_, err := f.checkoutService().GetCheckout(ctx, 1)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveOrder)

	_, err = f.checkoutService().SubmitAddresses(ctx, 1, &usecase.CheckoutInput{
		UseDefaultShipping: true,
		UseDefaultBilling:  true,
		PaymentOption:      "stripe",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveOrder)
}
