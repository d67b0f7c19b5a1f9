package entity

import "github.com/shopspring/decimal"

// Coupon is a flat discount keyed by code.
type Coupon struct {
	ID     uint            `json:"id"`
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"`
}
