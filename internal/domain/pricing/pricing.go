// Package pricing computes order totals with decimal arithmetic.
package pricing

import (
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineSummary is the priced view of one order line.
type LineSummary struct {
	Line       *entity.OrderItem `json:"line"`
	UnitPrice  decimal.Decimal   `json:"unit_price"`
	ListTotal  decimal.Decimal   `json:"list_total"`
	FinalTotal decimal.Decimal   `json:"final_total"`
	Saved      decimal.Decimal   `json:"saved"`
}

// Breakdown is the priced view of a whole order.
type Breakdown struct {
	Lines    []LineSummary   `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Calculator prices orders. With clampAtZero a coupon larger than the
// subtotal yields a zero total instead of a negative one.
type Calculator struct {
	clampAtZero bool
}

// NewCalculator creates a Calculator.
func NewCalculator(clampAtZero bool) *Calculator {
	return &Calculator{clampAtZero: clampAtZero}
}

// LineTotal returns quantity times the effective unit price. Lines whose item
// is not loaded contribute zero.
func LineTotal(line *entity.OrderItem) decimal.Decimal {
	if line == nil || line.Item == nil {
		return decimal.Zero
	}

	return line.Item.UnitPrice().Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// Total returns the order total after the coupon.
func (c *Calculator) Total(order *entity.Order) decimal.Decimal {
	return c.Breakdown(order).Total
}

// Breakdown prices every line and applies the coupon attached to the order.
func (c *Calculator) Breakdown(order *entity.Order) *Breakdown {
	b := &Breakdown{
		Lines:    make([]LineSummary, 0, len(order.Lines)),
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
	}

	for _, line := range order.Lines {
		summary := LineSummary{Line: line, FinalTotal: LineTotal(line)}
		if line.Item != nil {
			qty := decimal.NewFromInt(int64(line.Quantity))
			summary.UnitPrice = line.Item.UnitPrice()
			summary.ListTotal = line.Item.Price.Mul(qty)
			summary.Saved = summary.ListTotal.Sub(summary.FinalTotal)
		}
		b.Lines = append(b.Lines, summary)
		b.Subtotal = b.Subtotal.Add(summary.FinalTotal)
	}

	if order.Coupon != nil {
		b.Discount = order.Coupon.Amount
	}

	b.Total = b.Subtotal.Sub(b.Discount)
	if c.clampAtZero && b.Total.IsNegative() {
		b.Total = decimal.Zero
	}

	return b
}

// ToCents converts an amount to integer cents, truncating fractions of a cent.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Truncate(0).IntPart()
}
