package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase covers completed orders: refunds, delivery milestones and QR codes.
type OrderUsecase interface {
	// RequestRefund marks the order identified by reference code and stores the refund request.
	RequestRefund(ctx context.Context, input *RefundInput) (*entity.Refund, error)
	// UpdateDelivery sets the delivery milestones of a completed order.
	UpdateDelivery(ctx context.Context, refCode string, input *DeliveryInput) (*entity.Order, error)
	// GetOrderQR renders the reference code of one of the user's completed orders as PNG.
	GetOrderQR(ctx context.Context, userID uint, refCode string) ([]byte, error)
}

// --- Input DTOs ---

// RefundInput is the public refund request form.
type RefundInput struct {
	RefCode string `json:"ref_code"`
	Reason  string `json:"reason"`
	Email   string `json:"email"`
}

// DeliveryInput carries the delivery milestones. Received implies being delivered.
type DeliveryInput struct {
	BeingDelivered bool `json:"being_delivered"`
	Received       bool `json:"received"`
}
