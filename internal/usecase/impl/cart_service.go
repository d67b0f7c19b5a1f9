package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// CartServiceParams holds the dependencies of the cart service, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Items      repository.ItemRepository
	Orders     repository.OrderRepository
	Coupons    repository.CouponRepository
	Locker     service.CartLocker
	Calculator *pricing.Calculator
	Logger     *slog.Logger
}

// cartService implements the CartUsecase interface.
type cartService struct {
	*orderAssembler

	txManager repository.TransactionManager
	locker    service.CartLocker
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		orderAssembler: newOrderAssembler(params.Items, params.Orders, params.Coupons, params.Calculator, params.Logger),
		txManager:      params.TxManager,
		locker:         params.Locker,
		logger:         params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) findItem(ctx context.Context, slug string) (*entity.Item, error) {
	item, err := srv.items.FindItemBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

// AddItem adds one unit of the item to the user's open order.
func (srv *cartService) AddItem(ctx context.Context, userID uint, slug string) (*usecase.OrderSummary, error) {
	item, err := srv.findItem(ctx, slug)
	if err != nil {
		return nil, err
	}

	unlock, err := lockCart(ctx, srv.locker, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = retryOnDuplicate(func() error {
		return srv.txManager.InTransactionStore(ctx, func(repos repository.TransactionRepositoryFactory) error {
			return srv.addItem(ctx, repos.NewOrderRepository(), userID, item.ID)
		})
	}, repository.ErrDuplicateOpenOrder, repository.ErrDuplicateOrderLine, repository.ErrOrderAlreadyOrdered)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add item to cart")
	}

	srv.log(ctx).Info("Item added to cart",
		slog.Uint64("user_id", uint64(userID)),
		slog.String("slug", slug),
	)

	return srv.openSummary(ctx, userID)
}

func (srv *cartService) addItem(ctx context.Context, orders repository.OrderRepository, userID, itemID uint) error {
	// 1. Resolve or create the open order
	order, err := srv.findOpenOrder(ctx, orders, userID)
	if err != nil {
		return err
	}
	if order == nil {
		order = &entity.Order{UserID: userID}
		if err := orders.CreateOpenOrder(ctx, order); err != nil {
			return err
		}
	} else if _, err := orders.LockOpenOrder(ctx, order.ID); err != nil {
		// Serializes against a payment completing the same order.
		return err
	}

	// 2. Resolve or create the unordered line
	line, err := orders.FindUnorderedLine(ctx, userID, itemID)
	if errors.Is(err, repository.ErrOrderLineNotFound) {
		line = &entity.OrderItem{UserID: userID, ItemID: itemID, Quantity: 1}
		if err := orders.CreateLine(ctx, line); err != nil {
			return err
		}

		return orders.LinkLine(ctx, order.ID, line.ID)
	}
	if err != nil {
		return err
	}

	// 3. Increment a line already in the order, otherwise attach it
	linked, err := orders.IsLineLinked(ctx, order.ID, line.ID)
	if err != nil {
		return err
	}
	if linked {
		return orders.AdjustLineQuantity(ctx, line.ID, 1)
	}

	return orders.LinkLine(ctx, order.ID, line.ID)
}

// RemoveItem removes the item's line from the open order.
func (srv *cartService) RemoveItem(ctx context.Context, userID uint, slug string) (*usecase.OrderSummary, error) {
	return srv.shrink(ctx, userID, slug, true)
}

// DecrementItem removes one unit of the item; the last unit removes the line.
func (srv *cartService) DecrementItem(ctx context.Context, userID uint, slug string) (*usecase.OrderSummary, error) {
	return srv.shrink(ctx, userID, slug, false)
}

func (srv *cartService) shrink(ctx context.Context, userID uint, slug string, removeAll bool) (*usecase.OrderSummary, error) {
	item, err := srv.findItem(ctx, slug)
	if err != nil {
		return nil, err
	}

	unlock, err := lockCart(ctx, srv.locker, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	err = srv.txManager.InTransactionStore(ctx, func(repos repository.TransactionRepositoryFactory) error {
		orders := repos.NewOrderRepository()

		order, err := srv.findOpenOrder(ctx, orders, userID)
		if err != nil {
			return err
		}
		if order == nil {
			return domainerrors.ErrNoActiveOrder
		}
		if _, err := orders.LockOpenOrder(ctx, order.ID); err != nil {
			if errors.IsAny(err, repository.ErrOrderAlreadyOrdered, repository.ErrOrderNotFound) {
				return domainerrors.ErrNoActiveOrder
			}

			return err
		}

		line, err := orders.FindUnorderedLine(ctx, userID, item.ID)
		if errors.Is(err, repository.ErrOrderLineNotFound) {
			return domainerrors.ErrItemNotInCart
		}
		if err != nil {
			return err
		}

		linked, err := orders.IsLineLinked(ctx, order.ID, line.ID)
		if err != nil {
			return err
		}
		if !linked {
			return domainerrors.ErrItemNotInCart
		}

		if !removeAll && line.Quantity > 1 {
			return orders.AdjustLineQuantity(ctx, line.ID, -1)
		}

		if err := orders.DeleteLine(ctx, order.ID, line.ID); err != nil {
			if errors.Is(err, repository.ErrOrderLineNotFound) {
				return domainerrors.ErrItemNotInCart
			}

			return err
		}

		return nil
	})
	if err != nil {
		if errors.IsAny(err, domainerrors.ErrNoActiveOrder, domainerrors.ErrItemNotInCart) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to update cart")
	}

	srv.log(ctx).Info("Cart line reduced",
		slog.Uint64("user_id", uint64(userID)),
		slog.String("slug", slug),
		slog.Bool("removed", removeAll),
	)

	return srv.openSummary(ctx, userID)
}

// GetOpenOrder returns the priced open order.
func (srv *cartService) GetOpenOrder(ctx context.Context, userID uint) (*usecase.OrderSummary, error) {
	return srv.openSummary(ctx, userID)
}

// CartLineCount counts the lines of the open order.
func (srv *cartService) CartLineCount(ctx context.Context, userID uint) (int, error) {
	order, err := srv.findOpenOrder(ctx, srv.orders, userID)
	if err != nil {
		return 0, err
	}
	if order == nil {
		return 0, nil
	}

	lines, err := srv.orders.FindOrderLines(ctx, order.ID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count cart lines")
	}

	return len(lines), nil
}

// ApplyCoupon attaches the coupon with code to the open order.
func (srv *cartService) ApplyCoupon(ctx context.Context, userID uint, code string) (*usecase.OrderSummary, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"code": "required"})
	}

	order, err := srv.findOpenOrder(ctx, srv.orders, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrNoActiveOrder
	}

	coupon, err := srv.coupons.FindCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	if err := srv.orders.SetCoupon(ctx, order.ID, coupon.ID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNoActiveOrder
		}

		return nil, errors.Wrap(err, "failed to apply coupon")
	}

	srv.log(ctx).Info("Coupon applied",
		slog.Uint64("user_id", uint64(userID)),
		slog.Uint64("order_id", uint64(order.ID)),
		slog.String("code", coupon.Code),
	)

	return srv.openSummary(ctx, userID)
}
