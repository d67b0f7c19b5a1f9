package gormstore

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindOpenOrders returns every unordered order of a user, oldest first.
func (repo *orderRepository) FindOpenOrders(ctx context.Context, userID uint) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND ordered = ?", userID, false).
		Order("id ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open orders")
	}

	return toOrderDomains(orderModels), nil
}

// CreateOpenOrder persists a new open order.
func (repo *orderRepository) CreateOpenOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	orderM.Ordered = false
	if orderM.StartDate.IsZero() {
		orderM.StartDate = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOpenOrder
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.StartDate = orderM.StartDate

	return nil
}

// FindOrderByID retrieves an order by ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uint) (*entity.Order, error) {
	return repo.findOrder(ctx, "id = ?", id)
}

// LockOpenOrder reads an open order with SELECT ... FOR UPDATE. SQLite has no
// row locks; its single writer serializes the transaction instead.
func (repo *orderRepository) LockOpenOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", orderID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	if orderM.Ordered {
		return nil, repository.ErrOrderAlreadyOrdered
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderByRefCode retrieves a completed order by reference code.
func (repo *orderRepository) FindOrderByRefCode(ctx context.Context, refCode string) (*entity.Order, error) {
	return repo.findOrder(ctx, "ref_code = ? AND ordered = ?", refCode, true)
}

func (repo *orderRepository) findOrder(ctx context.Context, query string, args ...any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderLines returns the lines linked to an order through the join table.
func (repo *orderRepository) FindOrderLines(ctx context.Context, orderID uint) ([]*entity.OrderItem, error) {
	var lineModels []*model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Joins("JOIN order_item_links ON order_item_links.order_item_id = order_items.id").
		Where("order_item_links.order_id = ?", orderID).
		Order("order_items.id ASC").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order lines")
	}

	lines := make([]*entity.OrderItem, 0, len(lineModels))
	for _, lineM := range lineModels {
		lines = append(lines, toLineDomain(lineM))
	}

	return lines, nil
}

// FindUnorderedLine retrieves the user's unordered line for an item.
func (repo *orderRepository) FindUnorderedLine(ctx context.Context, userID, itemID uint) (*entity.OrderItem, error) {
	var lineM model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ? AND ordered = ?", userID, itemID, false).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find order line")
	}

	return toLineDomain(&lineM), nil
}

// CreateLine persists a new unordered line.
func (repo *orderRepository) CreateLine(ctx context.Context, line *entity.OrderItem) error {
	lineM := fromLineDomain(line)
	if lineM.Quantity < 1 {
		lineM.Quantity = 1
	}

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderLine
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line")
	}

	line.ID = lineM.ID
	line.Quantity = lineM.Quantity

	return nil
}

// IsLineLinked reports whether the line is attached to the order.
func (repo *orderRepository) IsLineLinked(ctx context.Context, orderID, lineID uint) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemLinkModel{}).
		Where("order_id = ? AND order_item_id = ?", orderID, lineID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check order line link")
	}

	return count > 0, nil
}

// LinkLine attaches a line to an order. Linking twice is a no-op.
func (repo *orderRepository) LinkLine(ctx context.Context, orderID, lineID uint) error {
	link := &model.OrderItemLinkModel{OrderID: orderID, OrderItemID: lineID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to link order line")
	}

	return nil
}

// AdjustLineQuantity adds delta to an unordered line's quantity in one statement.
func (repo *orderRepository) AdjustLineQuantity(ctx context.Context, lineID uint, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("id = ? AND ordered = ?", lineID, false).
		Update("quantity", gorm.Expr("quantity + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to adjust line quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderLineNotFound
	}

	return nil
}

// DeleteLine detaches a line from the order and deletes it.
func (repo *orderRepository) DeleteLine(ctx context.Context, orderID, lineID uint) error {
	result := repo.db.WithContext(ctx).
		Where("order_id = ? AND order_item_id = ?", orderID, lineID).
		Delete(&model.OrderItemLinkModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to unlink order line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderLineNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND ordered = ?", lineID, false).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order line")
	}

	return nil
}

// SetAddresses writes address IDs on an open order.
func (repo *orderRepository) SetAddresses(ctx context.Context, orderID uint, shippingID, billingID *uint) error {
	return repo.updateOpenOrder(ctx, orderID, map[string]any{
		"shipping_address_id": shippingID,
		"billing_address_id":  billingID,
	})
}

// SetCoupon attaches a coupon to an open order.
func (repo *orderRepository) SetCoupon(ctx context.Context, orderID, couponID uint) error {
	return repo.updateOpenOrder(ctx, orderID, map[string]any{"coupon_id": couponID})
}

func (repo *orderRepository) updateOpenOrder(ctx context.Context, orderID uint, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND ordered = ?", orderID, false).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// MarkOrderPaid flips an open order to ordered and links the payment.
func (repo *orderRepository) MarkOrderPaid(ctx context.Context, orderID, paymentID uint, refCode string, orderedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND ordered = ?", orderID, false).
		Updates(map[string]any{
			"ordered":      true,
			"payment_id":   paymentID,
			"ref_code":     refCode,
			"ordered_date": orderedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateRefCode
		}

		return errors.Wrap(result.Error, "failed to mark order paid")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderAlreadyOrdered
	}

	return nil
}

// MarkLinesOrdered flips the ordered flag of lines that are still unordered.
func (repo *orderRepository) MarkLinesOrdered(ctx context.Context, lineIDs []uint) (int64, error) {
	if len(lineIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("id IN ? AND ordered = ?", lineIDs, false).
		Update("ordered", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark lines ordered")
	}

	return result.RowsAffected, nil
}

// MarkRefundRequested sets refund_requested on a completed order.
func (repo *orderRepository) MarkRefundRequested(ctx context.Context, orderID uint) error {
	return repo.updateCompletedOrder(ctx, orderID, map[string]any{"refund_requested": true})
}

// UpdateDeliveryFlags sets the delivery milestones of a completed order.
func (repo *orderRepository) UpdateDeliveryFlags(ctx context.Context, orderID uint, beingDelivered, received bool) error {
	return repo.updateCompletedOrder(ctx, orderID, map[string]any{
		"being_delivered": beingDelivered,
		"received":        received,
	})
}

func (repo *orderRepository) updateCompletedOrder(ctx context.Context, orderID uint, values map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND ordered = ?", orderID, true).
		Updates(values)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ListOrdersWithAddresses pages through orders that reference any address.
func (repo *orderRepository) ListOrdersWithAddresses(ctx context.Context, afterID uint, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id > ?", afterID).
		Where("shipping_address_id IS NOT NULL OR billing_address_id IS NOT NULL").
		Order("id ASC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders with addresses")
	}

	return toOrderDomains(orderModels), nil
}

// FindOrderedOrdersWithUnorderedLines returns IDs of paid orders that still link unordered lines.
func (repo *orderRepository) FindOrderedOrdersWithUnorderedLines(ctx context.Context) ([]uint, error) {
	ids := []uint{}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Distinct().
		Joins("JOIN order_item_links ON order_item_links.order_id = orders.id").
		Joins("JOIN order_items ON order_items.id = order_item_links.order_item_id").
		Where("orders.ordered = ? AND order_items.ordered = ?", true, false).
		Order("orders.id").
		Pluck("orders.id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ordered orders with open lines")
	}

	return ids, nil
}

// FindUsersWithMultipleOpenOrders returns users that own more than one open order.
func (repo *orderRepository) FindUsersWithMultipleOpenOrders(ctx context.Context) ([]uint, error) {
	ids := []uint{}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("ordered = ?", false).
		Group("user_id").
		Having("COUNT(*) > 1").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users with multiple open orders")
	}

	return ids, nil
}

// FindDistinctLineItemIDs returns every item ID referenced by a line.
func (repo *orderRepository) FindDistinctLineItemIDs(ctx context.Context) ([]uint, error) {
	ids := []uint{}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Distinct().
		Order("item_id").
		Pluck("item_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find line item IDs")
	}

	return ids, nil
}

// FindDistinctOrderUserIDs returns every user ID that owns an order.
func (repo *orderRepository) FindDistinctOrderUserIDs(ctx context.Context) ([]uint, error) {
	ids := []uint{}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Distinct().
		Order("user_id").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order user IDs")
	}

	return ids, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                data.ID,
		UserID:            data.UserID,
		StartDate:         data.StartDate,
		Ordered:           data.Ordered,
		ShippingAddressID: data.ShippingAddressID,
		BillingAddressID:  data.BillingAddressID,
		PaymentID:         data.PaymentID,
		CouponID:          data.CouponID,
		BeingDelivered:    data.BeingDelivered,
		Received:          data.Received,
		RefundRequested:   data.RefundRequested,
		RefundGranted:     data.RefundGranted,
	}
	if data.RefCode != nil {
		order.RefCode = *data.RefCode
	}
	if data.OrderedDate != nil {
		order.OrderedDate = *data.OrderedDate
	}

	return order
}

func toOrderDomains(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:                data.ID,
		UserID:            data.UserID,
		StartDate:         data.StartDate,
		Ordered:           data.Ordered,
		ShippingAddressID: data.ShippingAddressID,
		BillingAddressID:  data.BillingAddressID,
		PaymentID:         data.PaymentID,
		CouponID:          data.CouponID,
		BeingDelivered:    data.BeingDelivered,
		Received:          data.Received,
		RefundRequested:   data.RefundRequested,
		RefundGranted:     data.RefundGranted,
	}
	if data.RefCode != "" {
		orderM.RefCode = &data.RefCode
	}
	if !data.OrderedDate.IsZero() {
		orderM.OrderedDate = &data.OrderedDate
	}

	return orderM
}

func toLineDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:       data.ID,
		UserID:   data.UserID,
		ItemID:   data.ItemID,
		Quantity: data.Quantity,
		Ordered:  data.Ordered,
	}
}

func fromLineDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:       data.ID,
		UserID:   data.UserID,
		ItemID:   data.ItemID,
		Quantity: data.Quantity,
		Ordered:  data.Ordered,
	}
}
