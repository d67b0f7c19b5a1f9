package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const defaultReconcileBatchSize = 200

// ReconcileServiceParams holds the dependencies of the reconcile service, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	Items     repository.ItemRepository
	Users     repository.UserRepository
	Addresses repository.AddressRepository
	Orders    repository.OrderRepository
	Payments  repository.PaymentRepository
	Logger    *slog.Logger
}

// reconcileService implements the ReconcileUsecase interface.
type reconcileService struct {
	items     repository.ItemRepository
	users     repository.UserRepository
	addresses repository.AddressRepository
	orders    repository.OrderRepository
	payments  repository.PaymentRepository
	logger    *slog.Logger
}

// NewReconcileService is the constructor for reconcileService.
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	return &reconcileService{
		items:     params.Items,
		users:     params.Users,
		addresses: params.Addresses,
		orders:    params.Orders,
		payments:  params.Payments,
		logger:    params.Logger,
	}
}

func (srv *reconcileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReconcileOrder checks one order against the other stores.
func (srv *reconcileService) ReconcileOrder(ctx context.Context, orderID uint) (*usecase.ReconcileReport, error) {
	order, err := srv.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	report := &usecase.ReconcileReport{OrdersChecked: 1}

	dangling, err := repairDanglingAddresses(ctx, srv.orders, srv.addresses, srv.logger, order)
	if err != nil {
		return nil, err
	}
	if dangling {
		report.DanglingAddressOrders = append(report.DanglingAddressOrders, order.ID)
	}

	lines, err := srv.orders.FindOrderLines(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order lines")
	}
	order.Lines = lines

	if order.Ordered {
		repaired, err := srv.repairUnorderedLines(ctx, order)
		if err != nil {
			return nil, err
		}
		if repaired > 0 {
			report.RepairedLineOrders = append(report.RepairedLineOrders, order.ID)
			report.LinesRepaired += repaired
		}
	}

	missingItems, err := srv.findMissingItems(ctx, order.ItemIDs(), defaultReconcileBatchSize)
	if err != nil {
		return nil, err
	}
	for _, itemID := range missingItems {
		logConsistencyFault(ctx, srv.logger, faultMissingItem,
			slog.Uint64("order_id", uint64(order.ID)),
			slog.Uint64("user_id", uint64(order.UserID)),
			slog.Uint64("item_id", uint64(itemID)),
		)
	}
	report.MissingItems = missingItems

	existingUsers, err := srv.users.FindExistingUserIDs(ctx, []uint{order.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check order user")
	}
	if len(existingUsers) == 0 {
		logConsistencyFault(ctx, srv.logger, faultMissingUser,
			slog.Uint64("order_id", uint64(order.ID)),
			slog.Uint64("user_id", uint64(order.UserID)),
		)
		report.MissingUsers = append(report.MissingUsers, order.UserID)
	}

	open, err := srv.orders.FindOpenOrders(ctx, order.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find open orders")
	}
	if len(open) > 1 {
		logConsistencyFault(ctx, srv.logger, faultMultipleOpenOrders,
			slog.Uint64("user_id", uint64(order.UserID)),
			slog.Int("open_orders", len(open)),
		)
		report.MultipleOpenOrders = append(report.MultipleOpenOrders, order.UserID)
	}

	return report, nil
}

// ReconcileAll sweeps every store. Repairs are limited to clearing dangling
// addresses on open orders and flipping stale lines on paid orders; the rest
// is reported.
func (srv *reconcileService) ReconcileAll(ctx context.Context, batchSize int) (*usecase.ReconcileReport, error) {
	if batchSize <= 0 {
		batchSize = defaultReconcileBatchSize
	}

	report := &usecase.ReconcileReport{}

	steps := []struct {
		name string
		run  func(context.Context, int, *usecase.ReconcileReport) error
	}{
		{"dangling_addresses", srv.sweepDanglingAddresses},
		{"unordered_lines", srv.sweepUnorderedLines},
		{"unreferenced_payments", srv.sweepUnreferencedPayments},
		{"multiple_open_orders", srv.sweepMultipleOpenOrders},
		{"missing_items", srv.sweepMissingItems},
		{"missing_users", srv.sweepMissingUsers},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := step.run(ctx, batchSize, report); err != nil {
			return report, errors.Wrapf(err, "reconcile step %s", step.name)
		}
	}

	srv.log(ctx).Info("Reconciliation finished",
		slog.Int("orders_checked", report.OrdersChecked),
		slog.Int("faults", report.Faults()),
		slog.Int64("lines_repaired", report.LinesRepaired),
	)

	return report, nil
}

// sweepDanglingAddresses pages through orders with addresses and checks them a batch at a time.
func (srv *reconcileService) sweepDanglingAddresses(ctx context.Context, batchSize int, report *usecase.ReconcileReport) error {
	var afterID uint
	for {
		page, err := srv.orders.ListOrdersWithAddresses(ctx, afterID, batchSize)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		report.OrdersChecked += len(page)
		afterID = page[len(page)-1].ID

		var ids []uint
		for _, order := range page {
			ids = append(ids, orderAddressIDs(order)...)
		}
		existing, err := srv.addresses.FindExistingAddressIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to check order addresses")
		}
		missing := missingIDs(ids, existing)
		if len(missing) == 0 {
			continue
		}

		for _, order := range page {
			if err := srv.clearAddresses(ctx, order, missing, report); err != nil {
				return err
			}
		}

		if len(page) < batchSize {
			return nil
		}
	}
}

// clearAddresses drops the ids in missing from order. Paid orders are only reported.
func (srv *reconcileService) clearAddresses(ctx context.Context, order *entity.Order, missing []uint, report *usecase.ReconcileReport) error {
	missingSet := make(map[uint]struct{}, len(missing))
	for _, id := range missing {
		missingSet[id] = struct{}{}
	}

	var gone []uint
	for _, id := range orderAddressIDs(order) {
		if _, ok := missingSet[id]; ok {
			gone = append(gone, id)
		}
	}
	if len(gone) == 0 {
		return nil
	}

	logConsistencyFault(ctx, srv.logger, faultDanglingAddress,
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Uint64("user_id", uint64(order.UserID)),
		slog.Any("address_ids", gone),
		slog.Bool("ordered", order.Ordered),
	)
	report.DanglingAddressOrders = append(report.DanglingAddressOrders, order.ID)

	if order.Ordered {
		return nil
	}

	dropMissingAddresses(order, gone)
	if err := srv.orders.SetAddresses(ctx, order.ID, order.ShippingAddressID, order.BillingAddressID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to clear dangling addresses")
	}

	return nil
}

func (srv *reconcileService) sweepUnorderedLines(ctx context.Context, _ int, report *usecase.ReconcileReport) error {
	orderIDs, err := srv.orders.FindOrderedOrdersWithUnorderedLines(ctx)
	if err != nil {
		return err
	}

	for _, orderID := range orderIDs {
		lines, err := srv.orders.FindOrderLines(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to load order lines")
		}

		repaired, err := srv.repairUnorderedLines(ctx, &entity.Order{ID: orderID, Ordered: true, Lines: lines})
		if err != nil {
			return err
		}
		if repaired > 0 {
			report.RepairedLineOrders = append(report.RepairedLineOrders, orderID)
			report.LinesRepaired += repaired
		}
	}

	return nil
}

// repairUnorderedLines flips lines of a paid order that were left unordered.
func (srv *reconcileService) repairUnorderedLines(ctx context.Context, order *entity.Order) (int64, error) {
	var stale []uint
	for _, line := range order.Lines {
		if !line.Ordered {
			stale = append(stale, line.ID)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	logConsistencyFault(ctx, srv.logger, faultUnorderedLines,
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Any("line_ids", stale),
	)

	repaired, err := srv.orders.MarkLinesOrdered(ctx, stale)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark lines ordered")
	}

	return repaired, nil
}

func (srv *reconcileService) sweepUnreferencedPayments(ctx context.Context, _ int, report *usecase.ReconcileReport) error {
	payments, err := srv.payments.FindUnreferencedPayments(ctx)
	if err != nil {
		return err
	}

	for _, payment := range payments {
		logConsistencyFault(ctx, srv.logger, faultUnreferencedCharge,
			slog.Uint64("payment_id", uint64(payment.ID)),
			slog.Uint64("user_id", uint64(payment.UserID)),
			slog.String("charge_id", payment.ChargeID),
			slog.String("amount", payment.Amount.StringFixed(2)),
		)
		report.UnreferencedPayments = append(report.UnreferencedPayments, payment.ID)
	}

	return nil
}

func (srv *reconcileService) sweepMultipleOpenOrders(ctx context.Context, _ int, report *usecase.ReconcileReport) error {
	userIDs, err := srv.orders.FindUsersWithMultipleOpenOrders(ctx)
	if err != nil {
		return err
	}

	for _, userID := range userIDs {
		logConsistencyFault(ctx, srv.logger, faultMultipleOpenOrders, slog.Uint64("user_id", uint64(userID)))
	}
	report.MultipleOpenOrders = append(report.MultipleOpenOrders, userIDs...)

	return nil
}

func (srv *reconcileService) sweepMissingItems(ctx context.Context, batchSize int, report *usecase.ReconcileReport) error {
	itemIDs, err := srv.orders.FindDistinctLineItemIDs(ctx)
	if err != nil {
		return err
	}

	missing, err := srv.findMissingItems(ctx, itemIDs, batchSize)
	if err != nil {
		return err
	}
	for _, itemID := range missing {
		logConsistencyFault(ctx, srv.logger, faultMissingItem, slog.Uint64("item_id", uint64(itemID)))
	}
	report.MissingItems = append(report.MissingItems, missing...)

	return nil
}

func (srv *reconcileService) sweepMissingUsers(ctx context.Context, batchSize int, report *usecase.ReconcileReport) error {
	userIDs, err := srv.orders.FindDistinctOrderUserIDs(ctx)
	if err != nil {
		return err
	}

	for _, batch := range chunkIDs(userIDs, batchSize) {
		existing, err := srv.users.FindExistingUserIDs(ctx, batch)
		if err != nil {
			return errors.Wrap(err, "failed to check order users")
		}
		for _, userID := range missingIDs(batch, existing) {
			logConsistencyFault(ctx, srv.logger, faultMissingUser, slog.Uint64("user_id", uint64(userID)))
			report.MissingUsers = append(report.MissingUsers, userID)
		}
	}

	return nil
}

// findMissingItems returns the ids with no catalog row.
func (srv *reconcileService) findMissingItems(ctx context.Context, itemIDs []uint, batchSize int) ([]uint, error) {
	var missing []uint
	for _, batch := range chunkIDs(itemIDs, batchSize) {
		items, err := srv.items.FindItemsByIDs(ctx, batch)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check catalog items")
		}

		found := make([]uint, 0, len(items))
		for _, item := range items {
			found = append(found, item.ID)
		}
		missing = append(missing, missingIDs(batch, found)...)
	}

	return missing, nil
}

func chunkIDs(ids []uint, size int) [][]uint {
	var chunks [][]uint
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}

	return chunks
}
