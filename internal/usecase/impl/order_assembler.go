// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// Consistency fault kinds, logged with the "fault" attribute.
const (
	faultMultipleOpenOrders = "multiple_open_orders"
	faultDanglingAddress    = "dangling_address"
	faultOrphanAddresses    = "orphan_addresses"
	faultMissingItem        = "missing_item"
	faultMissingCoupon      = "missing_coupon"
	faultUnorderedLines     = "unordered_lines"
	faultUnreferencedCharge = "charge_without_order"
	faultMissingUser        = "missing_user"
)

// orderAssembler joins an order from the transaction store with its items
// from the catalog store and prices it.
type orderAssembler struct {
	items      repository.ItemRepository
	orders     repository.OrderRepository
	coupons    repository.CouponRepository
	calculator *pricing.Calculator
	logger     *slog.Logger
}

func newOrderAssembler(
	items repository.ItemRepository,
	orders repository.OrderRepository,
	coupons repository.CouponRepository,
	calculator *pricing.Calculator,
	logger *slog.Logger,
) *orderAssembler {
	return &orderAssembler{
		items:      items,
		orders:     orders,
		coupons:    coupons,
		calculator: calculator,
		logger:     logger,
	}
}

// findOpenOrder returns the user's open order through orders, or nil when there is none.
// More than one open order is a consistency fault; the oldest one is used.
func (a *orderAssembler) findOpenOrder(ctx context.Context, orders repository.OrderRepository, userID uint) (*entity.Order, error) {
	open, err := orders.FindOpenOrders(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find open order")
	}

	switch len(open) {
	case 0:
		return nil, nil
	case 1:
		return open[0], nil
	default:
		logConsistencyFault(ctx, a.logger, faultMultipleOpenOrders,
			slog.Uint64("user_id", uint64(userID)),
			slog.Uint64("order_id", uint64(open[0].ID)),
			slog.Int("open_orders", len(open)),
		)

		return open[0], nil
	}
}

// hydrate loads the order's lines, their catalog items and the coupon.
func (a *orderAssembler) hydrate(ctx context.Context, order *entity.Order) error {
	lines, err := a.orders.FindOrderLines(ctx, order.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load order lines")
	}
	order.Lines = lines

	if len(lines) > 0 {
		items, err := a.items.FindItemsByIDs(ctx, order.ItemIDs())
		if err != nil {
			return errors.Wrap(err, "failed to load catalog items")
		}

		byID := make(map[uint]*entity.Item, len(items))
		for _, item := range items {
			byID[item.ID] = item
		}
		for _, line := range lines {
			line.Item = byID[line.ItemID]
			if line.Item == nil {
				logConsistencyFault(ctx, a.logger, faultMissingItem,
					slog.Uint64("order_id", uint64(order.ID)),
					slog.Uint64("user_id", uint64(order.UserID)),
					slog.Uint64("item_id", uint64(line.ItemID)),
				)
			}
		}
	}

	order.Coupon = nil
	if order.CouponID != nil {
		coupon, err := a.coupons.FindCouponByID(ctx, *order.CouponID)
		switch {
		case errors.Is(err, repository.ErrCouponNotFound):
			logConsistencyFault(ctx, a.logger, faultMissingCoupon,
				slog.Uint64("order_id", uint64(order.ID)),
				slog.Uint64("coupon_id", uint64(*order.CouponID)),
			)
		case err != nil:
			return errors.Wrap(err, "failed to load coupon")
		default:
			order.Coupon = coupon
		}
	}

	return nil
}

// summarize prices a hydrated order.
func (a *orderAssembler) summarize(order *entity.Order) *usecase.OrderSummary {
	breakdown := a.calculator.Breakdown(order)

	return &usecase.OrderSummary{
		Order:     order,
		Status:    order.Status(),
		Lines:     breakdown.Lines,
		Coupon:    order.Coupon,
		Subtotal:  breakdown.Subtotal,
		Discount:  breakdown.Discount,
		Total:     breakdown.Total,
		LineCount: len(order.Lines),
	}
}

// openSummary loads, hydrates and prices the user's open order.
func (a *orderAssembler) openSummary(ctx context.Context, userID uint) (*usecase.OrderSummary, error) {
	order, err := a.findOpenOrder(ctx, a.orders, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrNoActiveOrder
	}

	if err := a.hydrate(ctx, order); err != nil {
		return nil, err
	}

	return a.summarize(order), nil
}
