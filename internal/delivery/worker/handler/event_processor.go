package handler

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// retryableError wraps an error to indicate the transport should redeliver the event
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// OrderEventProcessor reconciles the order referenced by an event.
// Push and Kafka deliveries share it.
type OrderEventProcessor struct {
	reconcileUC usecase.ReconcileUsecase
	logger      *slog.Logger
}

// NewOrderEventProcessor creates a new OrderEventProcessor
func NewOrderEventProcessor(reconcileUC usecase.ReconcileUsecase, logger *slog.Logger) *OrderEventProcessor {
	return &OrderEventProcessor{
		reconcileUC: reconcileUC,
		logger:      logger,
	}
}

// Process runs a per-order reconciliation. Events for unknown orders are dropped;
// any other failure is retryable.
func (p *OrderEventProcessor) Process(ctx context.Context, event *service.OrderEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	if event.OrderID == 0 {
		logger.Warn("[Worker] Event without order id dropped", slog.String("event_type", event.Type))

		return nil
	}

	report, err := p.reconcileUC.ReconcileOrder(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOrderNotFound) {
			logger.Warn("[Worker] Event references unknown order",
				slog.String("event_type", event.Type),
				slog.Uint64("order_id", uint64(event.OrderID)),
			)

			return nil
		}

		return newRetryableError(errors.WithStack(err))
	}

	if faults := report.Faults(); faults > 0 {
		logger.Warn("[Worker] Order reconciled with findings",
			slog.String("event_type", event.Type),
			slog.Uint64("order_id", uint64(event.OrderID)),
			slog.Int("faults", faults),
			slog.Any("report", report),
		)

		return nil
	}

	logger.Info("[Worker] Order consistent",
		slog.String("event_type", event.Type),
		slog.Uint64("order_id", uint64(event.OrderID)),
	)

	return nil
}
