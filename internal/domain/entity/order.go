package entity

import "time"

// OrderStatus is derived from an order's columns, never stored.
type OrderStatus string

const (
	OrderStatusOpen         OrderStatus = "OPEN"
	OrderStatusAddressesSet OrderStatus = "ADDRESSES_SET"
	OrderStatusPaid         OrderStatus = "PAID"
)

// Order lives in the transaction store. Address, user and item references
// point into other stores and are plain IDs.
type Order struct {
	ID                uint         `json:"id"`
	UserID            uint         `json:"user_id"`
	RefCode           string       `json:"ref_code,omitempty"`
	StartDate         time.Time    `json:"start_date"`
	OrderedDate       time.Time    `json:"ordered_date"`
	Ordered           bool         `json:"ordered"`
	ShippingAddressID *uint        `json:"shipping_address_id,omitempty"`
	BillingAddressID  *uint        `json:"billing_address_id,omitempty"`
	PaymentID         *uint        `json:"payment_id,omitempty"`
	CouponID          *uint        `json:"coupon_id,omitempty"`
	BeingDelivered    bool         `json:"being_delivered"`
	Received          bool         `json:"received"`
	RefundRequested   bool         `json:"refund_requested"`
	RefundGranted     bool         `json:"refund_granted"`
	Lines             []*OrderItem `json:"lines,omitempty"`
	Coupon            *Coupon      `json:"coupon,omitempty"`
}

// Status reports where the order sits in OPEN -> ADDRESSES_SET -> PAID.
func (o *Order) Status() OrderStatus {
	switch {
	case o.Ordered:
		return OrderStatusPaid
	case o.ShippingAddressID != nil && o.BillingAddressID != nil:
		return OrderStatusAddressesSet
	default:
		return OrderStatusOpen
	}
}

// LineIDs returns the IDs of all lines attached to the order.
func (o *Order) LineIDs() []uint {
	ids := make([]uint, 0, len(o.Lines))
	for _, line := range o.Lines {
		ids = append(ids, line.ID)
	}

	return ids
}

// ItemIDs returns the distinct catalog item IDs referenced by the order lines.
func (o *Order) ItemIDs() []uint {
	seen := make(map[uint]struct{}, len(o.Lines))
	ids := make([]uint, 0, len(o.Lines))
	for _, line := range o.Lines {
		if _, ok := seen[line.ItemID]; ok {
			continue
		}
		seen[line.ItemID] = struct{}{}
		ids = append(ids, line.ItemID)
	}

	return ids
}

// LineForItem returns the line holding itemID, or nil.
func (o *Order) LineForItem(itemID uint) *OrderItem {
	for _, line := range o.Lines {
		if line.ItemID == itemID {
			return line
		}
	}

	return nil
}

// HasDanglingLines reports lines whose catalog item could not be resolved.
func (o *Order) HasDanglingLines() bool {
	for _, line := range o.Lines {
		if line.Item == nil {
			return true
		}
	}

	return false
}

// OrderItem is one cart line in the transaction store.
type OrderItem struct {
	ID       uint  `json:"id"`
	UserID   uint  `json:"user_id"`
	ItemID   uint  `json:"item_id"`
	Quantity int   `json:"quantity"`
	Ordered  bool  `json:"ordered"`
	Item     *Item `json:"item,omitempty"`
}
