package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a successful gateway charge.
type Payment struct {
	ID        uint            `json:"id"`
	ChargeID  string          `json:"charge_id"`
	UserID    uint            `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Refund is a customer's request to reverse a completed order.
type Refund struct {
	ID        uint      `json:"id"`
	OrderID   uint      `json:"order_id"`
	Reason    string    `json:"reason"`
	Email     string    `json:"email"`
	Accepted  bool      `json:"accepted"`
	CreatedAt time.Time `json:"created_at"`
}
