package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	refCodeLength   = 20
	refCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// Largest multiple of len(refCodeAlphabet) below 256; bytes above it are rejected to keep the draw uniform.
	refCodeByteLimit = 252

	maxDuplicateRetries = 2
)

// logConsistencyFault reports a cross-store inconsistency.
func logConsistencyFault(ctx context.Context, logger *slog.Logger, fault string, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("fault", fault))
	for _, attr := range attrs {
		args = append(args, attr)
	}

	deliverycontext.GetLoggerOrDefault(ctx, logger).Error("Consistency fault", args...)
}

// newRefCode returns a random reference code of lowercase letters and digits.
func newRefCode() (string, error) {
	code := make([]byte, 0, refCodeLength)
	buf := make([]byte, refCodeLength)

	for len(code) < refCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "failed to generate reference code")
		}
		for _, b := range buf {
			if b >= refCodeByteLimit {
				continue
			}
			code = append(code, refCodeAlphabet[int(b)%len(refCodeAlphabet)])
			if len(code) == refCodeLength {
				break
			}
		}
	}

	return string(code), nil
}

// publishOrderEvent sends an event after commit. Failures are logged only;
// the reconciliation sweep covers lost events.
func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		RefCode:    order.RefCode,
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.Uint64("order_id", uint64(order.ID)),
			slog.Any("error", err),
		)
	}
}

// retryOnDuplicate reruns fn when a concurrent writer won a unique index race.
// Each attempt must open its own transaction: a failed statement aborts the current one.
func retryOnDuplicate(fn func() error, duplicates ...error) error {
	var err error
	for attempt := 0; attempt <= maxDuplicateRetries; attempt++ {
		err = fn()
		if err == nil || !errors.IsAny(err, duplicates...) {
			return err
		}
	}

	return err
}

// lockCart takes the per-user cart lock.
func lockCart(ctx context.Context, locker service.CartLocker, userID uint) (func(), error) {
	unlock, err := locker.Lock(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrLockNotAcquired) {
			return nil, domainerrors.ErrCartBusy
		}

		return nil, errors.Wrap(err, "failed to lock cart")
	}

	return unlock, nil
}

// missingIDs returns the ids absent from existing.
func missingIDs(ids, existing []uint) []uint {
	found := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	var missing []uint
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}

// orderAddressIDs lists the address ids set on the order.
func orderAddressIDs(order *entity.Order) []uint {
	var ids []uint
	if order.ShippingAddressID != nil {
		ids = append(ids, *order.ShippingAddressID)
	}
	if order.BillingAddressID != nil && (order.ShippingAddressID == nil || *order.BillingAddressID != *order.ShippingAddressID) {
		ids = append(ids, *order.BillingAddressID)
	}

	return ids
}

// dropMissingAddresses clears the address ids of order that are in missing.
// It reports whether anything changed.
func dropMissingAddresses(order *entity.Order, missing []uint) bool {
	gone := make(map[uint]struct{}, len(missing))
	for _, id := range missing {
		gone[id] = struct{}{}
	}

	changed := false
	if order.ShippingAddressID != nil {
		if _, ok := gone[*order.ShippingAddressID]; ok {
			order.ShippingAddressID = nil
			changed = true
		}
	}
	if order.BillingAddressID != nil {
		if _, ok := gone[*order.BillingAddressID]; ok {
			order.BillingAddressID = nil
			changed = true
		}
	}

	return changed
}

// repairDanglingAddresses clears address ids on an open order that point at
// missing identity store rows. Completed orders are only reported.
func repairDanglingAddresses(
	ctx context.Context,
	orders repository.OrderRepository,
	addresses repository.AddressRepository,
	logger *slog.Logger,
	order *entity.Order,
) (bool, error) {
	ids := orderAddressIDs(order)
	if len(ids) == 0 {
		return false, nil
	}

	existing, err := addresses.FindExistingAddressIDs(ctx, ids)
	if err != nil {
		return false, errors.Wrap(err, "failed to check order addresses")
	}

	missing := missingIDs(ids, existing)
	if len(missing) == 0 {
		return false, nil
	}

	logConsistencyFault(ctx, logger, faultDanglingAddress,
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Uint64("user_id", uint64(order.UserID)),
		slog.Any("address_ids", missing),
		slog.Bool("ordered", order.Ordered),
	)

	if order.Ordered {
		return true, nil
	}

	dropMissingAddresses(order, missing)
	if err := orders.SetAddresses(ctx, order.ID, order.ShippingAddressID, order.BillingAddressID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			// Paid in the meantime; the next sweep reports it.
			return true, nil
		}

		return true, errors.Wrap(err, "failed to clear dangling addresses")
	}

	return true, nil
}
