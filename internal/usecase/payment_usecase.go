package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentUsecase drives the ADDRESSES_SET -> PAID step.
type PaymentUsecase interface {
	// GetPayment returns what the payment page needs to render.
	GetPayment(ctx context.Context, userID uint) (*PaymentView, error)
	// SubmitPayment charges the open order and completes it.
	SubmitPayment(ctx context.Context, userID uint, input *PaymentInput) (*PaymentResult, error)
}

// --- Input DTOs ---

// PaymentInput is the payment form. IdempotencyKey comes from the request header.
type PaymentInput struct {
	Token          string `json:"token"`
	Save           bool   `json:"save"`
	UseDefault     bool   `json:"use_default"`
	IdempotencyKey string `json:"-"`
}

// --- Output DTOs ---

// PaymentView is the payment page model.
type PaymentView struct {
	Summary            *OrderSummary `json:"summary"`
	OneClickPurchasing bool          `json:"one_click_purchasing"`
}

// PaymentResult is the outcome of a successful payment.
type PaymentResult struct {
	OrderID  uint            `json:"order_id"`
	RefCode  string          `json:"ref_code"`
	Amount   decimal.Decimal `json:"amount"`
	ChargeID string          `json:"charge_id,omitempty"`
	Replayed bool            `json:"replayed"`
}
