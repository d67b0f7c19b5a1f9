package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const maxRefundReasonLength = 2000

// OrderServiceParams holds the dependencies of the order service, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Orders    repository.OrderRepository
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orders    repository.OrderRepository
	qrCode    service.QRCodeService
	publisher service.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orders:    params.Orders,
		qrCode:    params.QRCode,
		publisher: params.Publisher,
		validate:  validator.New(),
		logger:    params.Logger,
	}
}

// RequestRefund flags the completed order and records the request in one
// transaction store transaction. Unknown codes create nothing.
func (srv *orderService) RequestRefund(ctx context.Context, input *usecase.RefundInput) (*entity.Refund, error) {
	refCode := strings.TrimSpace(input.RefCode)
	reason := strings.TrimSpace(input.Reason)
	email := strings.TrimSpace(input.Email)

	fields := domainerrors.FieldErrors{}
	if refCode == "" {
		fields["ref_code"] = "required"
	}
	if reason == "" {
		fields["reason"] = "required"
	} else if len(reason) > maxRefundReasonLength {
		fields["reason"] = "too long"
	}
	if err := srv.validate.Var(email, "required,email"); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	var (
		order  *entity.Order
		refund *entity.Refund
	)
	err := srv.txManager.InTransactionStore(ctx, func(repos repository.TransactionRepositoryFactory) error {
		orders := repos.NewOrderRepository()

		found, err := orders.FindOrderByRefCode(ctx, refCode)
		if err != nil {
			return err
		}

		if err := orders.MarkRefundRequested(ctx, found.ID); err != nil {
			return err
		}
		found.RefundRequested = true

		refund = &entity.Refund{
			OrderID:   found.ID,
			Reason:    reason,
			Email:     email,
			CreatedAt: time.Now(),
		}
		if err := repos.NewRefundRepository().CreateRefund(ctx, refund); err != nil {
			return err
		}
		order = found

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to request refund")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Refund requested",
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Uint64("refund_id", uint64(refund.ID)),
	)
	publishOrderEvent(ctx, srv.publisher, srv.logger, constants.EventRefundRequested, order)

	return refund, nil
}

// UpdateDelivery sets the delivery milestones of a completed order.
func (srv *orderService) UpdateDelivery(ctx context.Context, refCode string, input *usecase.DeliveryInput) (*entity.Order, error) {
	order, err := srv.orders.FindOrderByRefCode(ctx, refCode)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	beingDelivered := input.BeingDelivered || input.Received
	if err := srv.orders.UpdateDeliveryFlags(ctx, order.ID, beingDelivered, input.Received); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update delivery")
	}
	order.BeingDelivered = beingDelivered
	order.Received = input.Received

	publishOrderEvent(ctx, srv.publisher, srv.logger, constants.EventOrderDelivery, order)

	return order, nil
}

// GetOrderQR renders the reference code of a completed order owned by userID.
func (srv *orderService) GetOrderQR(ctx context.Context, userID uint, refCode string) ([]byte, error) {
	order, err := srv.orders.FindOrderByRefCode(ctx, refCode)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	// Other users' orders are indistinguishable from unknown ones.
	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	png, err := srv.qrCode.GenerateOrderQR(order.RefCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render order QR code")
	}

	return png, nil
}
