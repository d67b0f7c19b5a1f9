package worker

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type reconcileScheduler struct {
	reconcileUC usecase.ReconcileUsecase
	logger      *slog.Logger
	interval    time.Duration
	batchSize   int
	stopCh      chan struct{}
}

// ReconcileSchedulerParams holds dependencies for the periodic sweep
type ReconcileSchedulerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	ReconcileUC usecase.ReconcileUsecase
}

// NewReconcileScheduler runs ReconcileAll every reconcile.interval when reconcile.enabled is set.
func NewReconcileScheduler(params ReconcileSchedulerParams) delivery.Delivery {
	if !params.Cfg.Reconcile.Enabled {
		return disabled{name: "Periodic reconciliation", logger: params.Logger}
	}

	scheduler := newReconcileScheduler(params.ReconcileUC, params.Logger, params.Cfg.Reconcile.Interval, params.Cfg.Reconcile.BatchSize)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			close(scheduler.stopCh)

			return nil
		},
	})

	return scheduler
}

func newReconcileScheduler(reconcileUC usecase.ReconcileUsecase, logger *slog.Logger, interval time.Duration, batchSize int) *reconcileScheduler {
	return &reconcileScheduler{
		reconcileUC: reconcileUC,
		logger:      logger,
		interval:    interval,
		batchSize:   batchSize,
		stopCh:      make(chan struct{}),
	}
}

// Serve sweeps on every tick until stopped. A failed sweep is logged and retried on the next tick.
func (s *reconcileScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting periodic reconciliation", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *reconcileScheduler) sweep(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	report, err := s.reconcileUC.ReconcileAll(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("Periodic reconciliation failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Periodic reconciliation done",
		slog.Int("orders_checked", report.OrdersChecked),
		slog.Int("faults", report.Faults()),
	)
}
