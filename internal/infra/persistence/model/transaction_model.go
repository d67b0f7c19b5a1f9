package model

import (
	"time"

	"storefront/internal/infra/persistence/dbrouter"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table in the transaction store. UserID and
// the address IDs point into the identity store and carry no foreign key.
type OrderModel struct {
	ID                uint    `gorm:"primaryKey;autoIncrement"`
	UserID            uint    `gorm:"not null;index"`
	RefCode           *string `gorm:"type:varchar(20);uniqueIndex"`
	StartDate         time.Time
	OrderedDate       *time.Time
	Ordered           bool  `gorm:"not null;default:false"`
	ShippingAddressID *uint `gorm:"index"`
	BillingAddressID  *uint `gorm:"index"`
	PaymentID         *uint
	CouponID          *uint
	BeingDelivered    bool `gorm:"not null;default:false"`
	Received          bool `gorm:"not null;default:false"`
	RefundRequested   bool `gorm:"not null;default:false"`
	RefundGranted     bool `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// RouteMeta places orders in the transaction store.
func (OrderModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "core", Model: "order"}
}

// OrderItemModel mirrors the 'order_items' table: one cart line.
// ItemID points into the catalog store.
type OrderItemModel struct {
	ID       uint `gorm:"primaryKey;autoIncrement"`
	UserID   uint `gorm:"not null;index"`
	ItemID   uint `gorm:"not null;index"`
	Quantity int  `gorm:"not null;default:1"`
	Ordered  bool `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// RouteMeta places order lines in the transaction store.
func (OrderItemModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "core", Model: "orderitem"}
}

// OrderItemLinkModel mirrors the 'order_item_links' join table between orders and lines.
type OrderItemLinkModel struct {
	OrderID     uint `gorm:"primaryKey"`
	OrderItemID uint `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemLinkModel) TableName() string {
	return "order_item_links"
}

// RouteMeta places the join table in the transaction store.
func (OrderItemLinkModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "core", Model: "orderitems"}
}

// CouponModel mirrors the 'coupons' table.
type CouponModel struct {
	ID     uint            `gorm:"primaryKey;autoIncrement"`
	Code   string          `gorm:"type:varchar(15);not null;uniqueIndex"`
	Amount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

// RouteMeta places coupons in the transaction store.
func (CouponModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "core", Model: "coupon"}
}

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	ChargeID  string          `gorm:"type:varchar(50);not null"`
	UserID    uint            `gorm:"index"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// RouteMeta places payments in the transaction store.
func (PaymentModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "core", Model: "payment"}
}

// RefundModel mirrors the 'refunds' table.
type RefundModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	OrderID   uint   `gorm:"not null;index"`
	Reason    string `gorm:"type:text;not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Accepted  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefundModel) TableName() string {
	return "refunds"
}

// RouteMeta places refunds in the transaction store.
func (RefundModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "core", Model: "refund"}
}
