package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultChargeTimeout = 10 * time.Second
	refundTimeout        = 10 * time.Second
)

// PaymentServiceParams holds the dependencies of the payment service, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Config      *config.Config
	TxManager   repository.TransactionManager
	Items       repository.ItemRepository
	Orders      repository.OrderRepository
	Coupons     repository.CouponRepository
	Addresses   repository.AddressRepository
	Users       repository.UserRepository
	Gateway     service.PaymentGateway
	Locker      service.CartLocker
	Idempotency service.IdempotencyStore
	Publisher   service.EventPublisher
	Calculator  *pricing.Calculator
	Logger      *slog.Logger
}

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	*orderAssembler

	txManager      repository.TransactionManager
	addresses      repository.AddressRepository
	users          repository.UserRepository
	gateway        service.PaymentGateway
	locker         service.CartLocker
	idempotency    service.IdempotencyStore
	publisher      service.EventPublisher
	currency       string
	chargeTimeout  time.Duration
	idempotencyTTL time.Duration
	logger         *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	chargeTimeout := params.Config.Payment.Timeout
	if chargeTimeout <= 0 {
		chargeTimeout = defaultChargeTimeout
	}

	var idempotencyTTL time.Duration
	if params.Config.Redis != nil {
		idempotencyTTL = params.Config.Redis.IdempotencyTTL
	}

	return &paymentService{
		orderAssembler: newOrderAssembler(params.Items, params.Orders, params.Coupons, params.Calculator, params.Logger),
		txManager:      params.TxManager,
		addresses:      params.Addresses,
		users:          params.Users,
		gateway:        params.Gateway,
		locker:         params.Locker,
		idempotency:    params.Idempotency,
		publisher:      params.Publisher,
		currency:       params.Config.Payment.Currency,
		chargeTimeout:  chargeTimeout,
		idempotencyTTL: idempotencyTTL,
		logger:         params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPayment returns the summary of an order ready for payment.
func (srv *paymentService) GetPayment(ctx context.Context, userID uint) (*usecase.PaymentView, error) {
	summary, err := srv.chargeableSummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := srv.users.FindProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find user profile")
	}

	return &usecase.PaymentView{
		Summary:            summary,
		OneClickPurchasing: profile.HasSavedCard() && profile.OneClickPurchasing,
	}, nil
}

// chargeableSummary loads the open order and checks it has usable addresses.
func (srv *paymentService) chargeableSummary(ctx context.Context, userID uint) (*usecase.OrderSummary, error) {
	order, err := srv.findOpenOrder(ctx, srv.orders, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domainerrors.ErrNoActiveOrder
	}

	if _, err := repairDanglingAddresses(ctx, srv.orders, srv.addresses, srv.logger, order); err != nil {
		return nil, err
	}
	if order.BillingAddressID == nil {
		return nil, domainerrors.ErrBillingAddressRequired
	}
	if order.ShippingAddressID == nil {
		return nil, domainerrors.ErrAddressesRequired
	}

	if err := srv.hydrate(ctx, order); err != nil {
		return nil, err
	}

	return srv.summarize(order), nil
}

// SubmitPayment charges the open order and completes it. The gateway charge
// happens before any local write; a local failure after a successful charge
// refunds the charge.
func (srv *paymentService) SubmitPayment(ctx context.Context, userID uint, input *usecase.PaymentInput) (result *usecase.PaymentResult, err error) {
	if input.IdempotencyKey != "" {
		key := fmt.Sprintf("payment:%d:%s", userID, input.IdempotencyKey)

		record, claimed, beginErr := srv.idempotency.Begin(ctx, key, srv.idempotencyTTL)
		switch {
		case errors.Is(beginErr, service.ErrIdempotencyInProgress):
			return nil, domainerrors.ErrPaymentInProgress
		case beginErr != nil:
			// The gateway still deduplicates on the forwarded key.
			srv.log(ctx).Warn("Idempotency store unavailable, continuing without replay protection",
				slog.Any("error", beginErr),
			)
		case !claimed:
			return srv.replay(ctx, userID, record)
		default:
			defer func() {
				srv.settleIdempotency(ctx, key, result, err)
			}()
		}
	}

	unlock, err := lockCart(ctx, srv.locker, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	summary, err := srv.chargeableSummary(ctx, userID)
	if err != nil {
		return nil, err
	}
	order := summary.Order

	if order.HasDanglingLines() {
		logConsistencyFault(ctx, srv.logger, faultMissingItem,
			slog.Uint64("order_id", uint64(order.ID)),
			slog.Uint64("user_id", uint64(userID)),
		)

		return nil, domainerrors.ErrConsistencyFault.WithDetails("order references items missing from the catalog")
	}

	amountCents := pricing.ToCents(summary.Total)
	if len(order.Lines) == 0 || amountCents <= 0 {
		return nil, domainerrors.ErrOrderNotChargeable
	}

	req, err := srv.chargeRequest(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	req.AmountCents = amountCents
	req.Currency = srv.currency
	req.Description = fmt.Sprintf("order %d", order.ID)
	req.IdempotencyKey = input.IdempotencyKey
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}

	// 1. External charge, bounded by the payment timeout
	chargeCtx, cancel := context.WithTimeout(ctx, srv.chargeTimeout)
	charge, err := srv.gateway.Charge(chargeCtx, req)
	cancel()
	if err != nil {
		return nil, srv.mapGatewayError(ctx, order, err)
	}

	// 2. Local writes in one transaction store transaction
	refCode, err := srv.completeOrder(ctx, order, charge, summary)
	if err != nil {
		return nil, srv.compensateCharge(ctx, order, charge, err)
	}
	order.RefCode = refCode
	order.Ordered = true

	srv.log(ctx).Info("Order paid",
		slog.Uint64("user_id", uint64(userID)),
		slog.Uint64("order_id", uint64(order.ID)),
		slog.String("ref_code", refCode),
		slog.String("charge_id", charge.ID),
		slog.Int64("amount_cents", amountCents),
	)
	publishOrderEvent(ctx, srv.publisher, srv.logger, constants.EventOrderPaid, order)

	return &usecase.PaymentResult{
		OrderID:  order.ID,
		RefCode:  refCode,
		Amount:   summary.Total,
		ChargeID: charge.ID,
	}, nil
}

// chargeRequest picks the card source: a saved customer or a one-time token.
func (srv *paymentService) chargeRequest(ctx context.Context, userID uint, input *usecase.PaymentInput) (service.ChargeRequest, error) {
	var req service.ChargeRequest

	if !input.Save && !input.UseDefault {
		if input.Token == "" {
			return req, domainerrors.NewValidationError(domainerrors.FieldErrors{"token": "required"})
		}
		req.Token = input.Token

		return req, nil
	}

	profile, err := srv.users.FindProfileByUserID(ctx, userID)
	if err != nil {
		return req, errors.Wrap(err, "failed to find user profile")
	}

	if input.Save {
		if input.Token == "" {
			return req, domainerrors.NewValidationError(domainerrors.FieldErrors{"token": "required to save a card"})
		}
		if err := srv.saveCard(ctx, userID, profile, input.Token); err != nil {
			return req, err
		}
	} else if !profile.HasSavedCard() {
		return req, domainerrors.NewValidationError(domainerrors.FieldErrors{"use_default": "no saved card"})
	}

	req.CustomerRef = profile.PaymentCustomerRef

	return req, nil
}

// saveCard attaches the token to the user's gateway customer, creating the customer on first use.
func (srv *paymentService) saveCard(ctx context.Context, userID uint, profile *entity.UserProfile, token string) error {
	gatewayCtx, cancel := context.WithTimeout(ctx, srv.chargeTimeout)
	defer cancel()

	if profile.HasSavedCard() {
		if err := srv.gateway.AttachSource(gatewayCtx, profile.PaymentCustomerRef, token); err != nil {
			return srv.mapGatewayError(ctx, nil, err)
		}

		return nil
	}

	user, err := srv.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	customerRef, err := srv.gateway.CreateCustomer(gatewayCtx, user.Email, token)
	if err != nil {
		return srv.mapGatewayError(ctx, nil, err)
	}

	profile.PaymentCustomerRef = customerRef
	profile.OneClickPurchasing = true
	if err := srv.users.UpdateProfile(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to save payment customer")
	}

	return nil
}

// mapGatewayError turns a gateway failure into the user-facing outcome. Timeouts are transient.
func (srv *paymentService) mapGatewayError(ctx context.Context, order *entity.Order, err error) error {
	kind := service.PaymentErrorKindOf(err)

	attrs := []any{
		slog.String("kind", kind.String()),
		slog.Any("error", err),
	}
	if order != nil {
		attrs = append(attrs, slog.Uint64("order_id", uint64(order.ID)))
	}
	srv.log(ctx).Warn("Payment gateway call failed", attrs...)

	var perr *service.PaymentError
	errors.As(err, &perr)

	switch kind {
	case service.PaymentErrorDeclined:
		if perr != nil && perr.Message != "" {
			return domainerrors.ErrCardDeclined.WithDetails(perr.Message)
		}

		return domainerrors.ErrCardDeclined
	case service.PaymentErrorRejected:
		return domainerrors.ErrPaymentRejected
	default:
		return domainerrors.ErrPaymentRetryable
	}
}

// completeOrder records the payment, flips the lines and the order, and assigns
// a reference code. A reference code collision is retried with a fresh code.
func (srv *paymentService) completeOrder(ctx context.Context, order *entity.Order, charge *service.Charge, summary *usecase.OrderSummary) (string, error) {
	var refCode string

	err := retryOnDuplicate(func() error {
		code, err := newRefCode()
		if err != nil {
			return err
		}
		refCode = code

		return srv.txManager.InTransactionStore(ctx, func(repos repository.TransactionRepositoryFactory) error {
			orders := repos.NewOrderRepository()
			payments := repos.NewPaymentRepository()
			now := time.Now()

			// The cart must still be exactly what was charged.
			if err := verifyChargedCart(ctx, orders, order); err != nil {
				return err
			}

			payment := &entity.Payment{
				ChargeID:  charge.ID,
				UserID:    order.UserID,
				Amount:    summary.Total,
				CreatedAt: now,
			}
			if err := payments.CreatePayment(ctx, payment); err != nil {
				return err
			}

			if _, err := orders.MarkLinesOrdered(ctx, order.LineIDs()); err != nil {
				return err
			}

			if err := orders.MarkOrderPaid(ctx, order.ID, payment.ID, refCode, now); err != nil {
				return err
			}
			order.PaymentID = &payment.ID
			order.OrderedDate = now

			return nil
		})
	}, repository.ErrDuplicateRefCode)

	return refCode, err
}

// errCartChanged means the open order no longer matches the priced summary.
var errCartChanged = errors.New("cart changed during payment")

// verifyChargedCart locks the open order and compares its coupon and lines
// with the ones that were priced for the charge.
func verifyChargedCart(ctx context.Context, orders repository.OrderRepository, charged *entity.Order) error {
	current, err := orders.LockOpenOrder(ctx, charged.ID)
	if err != nil {
		return err
	}
	if !sameCoupon(current.CouponID, charged.CouponID) {
		return errors.Wrap(errCartChanged, "coupon changed")
	}

	lines, err := orders.FindOrderLines(ctx, charged.ID)
	if err != nil {
		return err
	}
	if len(lines) != len(charged.Lines) {
		return errors.Wrapf(errCartChanged, "%d lines charged, %d linked", len(charged.Lines), len(lines))
	}

	want := make(map[uint]*entity.OrderItem, len(charged.Lines))
	for _, line := range charged.Lines {
		want[line.ID] = line
	}
	for _, line := range lines {
		priced, ok := want[line.ID]
		if !ok || line.Ordered || line.ItemID != priced.ItemID || line.Quantity != priced.Quantity {
			return errors.Wrapf(errCartChanged, "line %d changed", line.ID)
		}
	}

	return nil
}

func sameCoupon(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// compensateCharge refunds a charge whose order could not be completed.
func (srv *paymentService) compensateCharge(ctx context.Context, order *entity.Order, charge *service.Charge, cause error) error {
	srv.log(ctx).Error("Failed to complete paid order, refunding charge",
		slog.Uint64("order_id", uint64(order.ID)),
		slog.String("charge_id", charge.ID),
		slog.Any("error", cause),
	)

	refundCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refundTimeout)
	defer cancel()

	if err := srv.gateway.RefundCharge(refundCtx, charge.ID); err != nil {
		logConsistencyFault(ctx, srv.logger, faultUnreferencedCharge,
			slog.Uint64("order_id", uint64(order.ID)),
			slog.Uint64("user_id", uint64(order.UserID)),
			slog.String("charge_id", charge.ID),
			slog.Any("error", err),
		)

		return domainerrors.ErrConsistencyFault
	}

	if errors.Is(cause, repository.ErrOrderAlreadyOrdered) {
		return domainerrors.ErrNoActiveOrder
	}
	if errors.Is(cause, errCartChanged) {
		return domainerrors.ErrCartChanged
	}

	return domainerrors.ErrPaymentRetryable
}

// replay answers a retried request from its stored outcome.
func (srv *paymentService) replay(ctx context.Context, userID uint, record *service.IdempotencyRecord) (*usecase.PaymentResult, error) {
	order, err := srv.orders.FindOrderByRefCode(ctx, record.RefCode)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find replayed order")
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	if err := srv.hydrate(ctx, order); err != nil {
		return nil, err
	}

	return &usecase.PaymentResult{
		OrderID:  order.ID,
		RefCode:  order.RefCode,
		Amount:   srv.calculator.Total(order),
		Replayed: true,
	}, nil
}

// settleIdempotency stores the outcome of a claimed key, or releases it on failure.
func (srv *paymentService) settleIdempotency(ctx context.Context, key string, result *usecase.PaymentResult, err error) {
	storeCtx := context.WithoutCancel(ctx)

	if err != nil || result == nil {
		if abandonErr := srv.idempotency.Abandon(storeCtx, key); abandonErr != nil {
			srv.log(ctx).Warn("Failed to release idempotency key", slog.Any("error", abandonErr))
		}

		return
	}

	record := &service.IdempotencyRecord{Completed: true, RefCode: result.RefCode}
	if completeErr := srv.idempotency.Complete(storeCtx, key, record, srv.idempotencyTTL); completeErr != nil {
		srv.log(ctx).Warn("Failed to store idempotency record", slog.Any("error", completeErr))
	}
}
