package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutUsecase drives the OPEN -> ADDRESSES_SET step.
type CheckoutUsecase interface {
	// GetCheckout returns the open order summary and the user's default addresses.
	// Dangling address references on the order are cleared on the way.
	GetCheckout(ctx context.Context, userID uint) (*CheckoutView, error)
	// SubmitAddresses stores the addresses in the identity store and links them to the open order.
	SubmitAddresses(ctx context.Context, userID uint, input *CheckoutInput) (*OrderSummary, error)
}

// --- Input DTOs ---

// AddressInput is a new address typed by the caller.
type AddressInput struct {
	StreetAddress    string `json:"street_address"`
	ApartmentAddress string `json:"apartment_address"`
	Country          string `json:"country"`
	Zip              string `json:"zip"`
}

// CheckoutInput is the checkout form. Shipping is either the default address
// or a new one; billing is the default, a new one or a copy of shipping.
type CheckoutInput struct {
	UseDefaultShipping bool          `json:"use_default_shipping"`
	Shipping           *AddressInput `json:"shipping,omitempty"`
	SetDefaultShipping bool          `json:"set_default_shipping"`
	SameBillingAddress bool          `json:"same_billing_address"`
	UseDefaultBilling  bool          `json:"use_default_billing"`
	Billing            *AddressInput `json:"billing,omitempty"`
	SetDefaultBilling  bool          `json:"set_default_billing"`
	PaymentOption      string        `json:"payment_option"`
}

// --- Output DTOs ---

// CheckoutView is the checkout page model.
type CheckoutView struct {
	Summary         *OrderSummary   `json:"summary"`
	DefaultShipping *entity.Address `json:"default_shipping,omitempty"`
	DefaultBilling  *entity.Address `json:"default_billing,omitempty"`
}
