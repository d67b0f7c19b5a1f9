package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for transaction store persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOpenOrder is returned when the user already has an open order.
	ErrDuplicateOpenOrder = errors.New("open order already exists")
	// ErrOrderLineNotFound is returned when a cart line is not found.
	ErrOrderLineNotFound = errors.New("order line not found")
	// ErrDuplicateOrderLine is returned when an unordered line for (user, item) already exists.
	ErrDuplicateOrderLine = errors.New("order line already exists")
	// ErrDuplicateRefCode is returned when a reference code collides.
	ErrDuplicateRefCode = errors.New("reference code already exists")
	// ErrOrderAlreadyOrdered is returned when a paid order is mutated as if open.
	ErrOrderAlreadyOrdered = errors.New("order already ordered")
	// ErrCouponNotFound is returned when a coupon code is unknown.
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrDuplicateCoupon is returned when a coupon code is already taken.
	ErrDuplicateCoupon = errors.New("coupon already exists")
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
)

// OrderRepository manages orders, lines and their links in the transaction store.
type OrderRepository interface {
	// FindOpenOrders returns every unordered order of a user, oldest first.
	FindOpenOrders(ctx context.Context, userID uint) ([]*entity.Order, error)

	// CreateOpenOrder persists a new open order. It returns ErrDuplicateOpenOrder
	// when the user already has one.
	CreateOpenOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by ID.
	FindOrderByID(ctx context.Context, id uint) (*entity.Order, error)

	// LockOpenOrder reads an open order under a row lock held until the
	// surrounding transaction ends. It returns ErrOrderAlreadyOrdered when the
	// order has been paid.
	LockOpenOrder(ctx context.Context, orderID uint) (*entity.Order, error)

	// FindOrderByRefCode retrieves a completed order by reference code.
	FindOrderByRefCode(ctx context.Context, refCode string) (*entity.Order, error)

	// FindOrderLines returns the lines linked to an order.
	FindOrderLines(ctx context.Context, orderID uint) ([]*entity.OrderItem, error)

	// FindUnorderedLine retrieves the user's unordered line for an item.
	FindUnorderedLine(ctx context.Context, userID, itemID uint) (*entity.OrderItem, error)

	// CreateLine persists a line. It returns ErrDuplicateOrderLine when an
	// unordered line for (user, item) already exists.
	CreateLine(ctx context.Context, line *entity.OrderItem) error

	// IsLineLinked reports whether the line is attached to the order.
	IsLineLinked(ctx context.Context, orderID, lineID uint) (bool, error)

	// LinkLine attaches a line to an order.
	LinkLine(ctx context.Context, orderID, lineID uint) error

	// AdjustLineQuantity adds delta to a line's quantity atomically.
	AdjustLineQuantity(ctx context.Context, lineID uint, delta int) error

	// DeleteLine detaches a line from the order and deletes it.
	DeleteLine(ctx context.Context, orderID, lineID uint) error

	// SetAddresses writes address IDs on an open order. Nil clears the reference.
	SetAddresses(ctx context.Context, orderID uint, shippingID, billingID *uint) error

	// SetCoupon attaches a coupon to an open order, replacing any previous one.
	SetCoupon(ctx context.Context, orderID, couponID uint) error

	// MarkOrderPaid flips an open order to ordered and links the payment.
	MarkOrderPaid(ctx context.Context, orderID, paymentID uint, refCode string, orderedAt time.Time) error

	// MarkLinesOrdered flips the ordered flag of lines that are still unordered.
	MarkLinesOrdered(ctx context.Context, lineIDs []uint) (int64, error)

	// MarkRefundRequested sets refund_requested on an order.
	MarkRefundRequested(ctx context.Context, orderID uint) error

	// UpdateDeliveryFlags sets the delivery milestones of an order.
	UpdateDeliveryFlags(ctx context.Context, orderID uint, beingDelivered, received bool) error

	// ListOrdersWithAddresses pages through orders that reference any address, by ascending ID.
	ListOrdersWithAddresses(ctx context.Context, afterID uint, limit int) ([]*entity.Order, error)

	// FindOrderedOrdersWithUnorderedLines returns IDs of paid orders that still link unordered lines.
	FindOrderedOrdersWithUnorderedLines(ctx context.Context) ([]uint, error)

	// FindUsersWithMultipleOpenOrders returns users that own more than one open order.
	FindUsersWithMultipleOpenOrders(ctx context.Context) ([]uint, error)

	// FindDistinctLineItemIDs returns every item ID referenced by a line.
	FindDistinctLineItemIDs(ctx context.Context) ([]uint, error)

	// FindDistinctOrderUserIDs returns every user ID that owns an order.
	FindDistinctOrderUserIDs(ctx context.Context) ([]uint, error)
}

// CouponRepository manages coupons in the transaction store.
type CouponRepository interface {
	// CreateCoupon persists a new coupon.
	CreateCoupon(ctx context.Context, coupon *entity.Coupon) error

	// FindCouponByCode retrieves a coupon by code.
	FindCouponByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// FindCouponByID retrieves a coupon by ID.
	FindCouponByID(ctx context.Context, id uint) (*entity.Coupon, error)
}

// PaymentRepository manages payments in the transaction store.
type PaymentRepository interface {
	// CreatePayment persists a charge record.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByID retrieves a payment by ID.
	FindPaymentByID(ctx context.Context, id uint) (*entity.Payment, error)

	// FindUnreferencedPayments returns payments no order points at.
	FindUnreferencedPayments(ctx context.Context) ([]*entity.Payment, error)
}

// RefundRepository manages refund requests in the transaction store.
type RefundRepository interface {
	// CreateRefund persists a refund request.
	CreateRefund(ctx context.Context, refund *entity.Refund) error

	// CountRefundsByOrder counts refund requests for an order.
	CountRefundsByOrder(ctx context.Context, orderID uint) (int64, error)
}
