package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// CartUsecase mutates and reads the user's open order.
type CartUsecase interface {
	// AddItem adds one unit of the item, creating the open order and the line as needed.
	AddItem(ctx context.Context, userID uint, slug string) (*OrderSummary, error)
	// RemoveItem drops the item's line entirely.
	RemoveItem(ctx context.Context, userID uint, slug string) (*OrderSummary, error)
	// DecrementItem removes one unit, dropping the line at zero.
	DecrementItem(ctx context.Context, userID uint, slug string) (*OrderSummary, error)
	// GetOpenOrder returns the priced open order or ErrNoActiveOrder.
	GetOpenOrder(ctx context.Context, userID uint) (*OrderSummary, error)
	// CartLineCount returns the number of lines in the open order, 0 without one.
	CartLineCount(ctx context.Context, userID uint) (int, error)
	// ApplyCoupon attaches the coupon to the open order, replacing any previous one.
	ApplyCoupon(ctx context.Context, userID uint, code string) (*OrderSummary, error)
}

// --- Output DTOs ---

// OrderSummary is an order with its lines priced.
type OrderSummary struct {
	Order     *entity.Order         `json:"order"`
	Status    entity.OrderStatus    `json:"status"`
	Lines     []pricing.LineSummary `json:"lines"`
	Coupon    *entity.Coupon        `json:"coupon,omitempty"`
	Subtotal  decimal.Decimal       `json:"subtotal"`
	Discount  decimal.Decimal       `json:"discount"`
	Total     decimal.Decimal       `json:"total"`
	LineCount int                   `json:"line_count"`
}
