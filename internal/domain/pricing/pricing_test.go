package pricing

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleOrder() *entity.Order {
	discounted := &entity.Item{
		ID:            1,
		Price:         dec("10.00"),
		DiscountPrice: decimal.NewNullDecimal(dec("8.00")),
	}
	listPrice := &entity.Item{ID: 2, Price: dec("10.00")}

	return &entity.Order{
		Lines: []*entity.OrderItem{
			{ID: 1, ItemID: 1, Quantity: 2, Item: discounted},
			{ID: 2, ItemID: 2, Quantity: 1, Item: listPrice},
		},
	}
}

func TestCalculator_Total(t *testing.T) {
	calc := NewCalculator(false)
	order := sampleOrder()

	assert.True(t, calc.Total(order).Equal(dec("26.00")))

	order.Coupon = &entity.Coupon{Code: "FIVE", Amount: dec("5.00")}
	assert.True(t, calc.Total(order).Equal(dec("21.00")))
}

func TestCalculator_TotalIsDeterministic(t *testing.T) {
	calc := NewCalculator(false)
	order := sampleOrder()

	first := calc.Total(order)
	for range 10 {
		assert.True(t, first.Equal(calc.Total(order)))
	}
}

func TestCalculator_Breakdown(t *testing.T) {
	calc := NewCalculator(false)
	order := sampleOrder()
	order.Coupon = &entity.Coupon{Amount: dec("5.00")}

	b := calc.Breakdown(order)

	assert.Len(t, b.Lines, 2)
	assert.True(t, b.Lines[0].UnitPrice.Equal(dec("8.00")))
	assert.True(t, b.Lines[0].Saved.Equal(dec("4.00")))
	assert.True(t, b.Lines[1].Saved.IsZero())
	assert.True(t, b.Subtotal.Equal(dec("26.00")))
	assert.True(t, b.Discount.Equal(dec("5.00")))
	assert.True(t, b.Total.Equal(dec("21.00")))
}

func TestCalculator_CouponExceedingSubtotal(t *testing.T) {
	order := &entity.Order{
		Lines:  []*entity.OrderItem{{Quantity: 1, Item: &entity.Item{Price: dec("3.00")}}},
		Coupon: &entity.Coupon{Amount: dec("5.00")},
	}

	assert.True(t, NewCalculator(false).Total(order).Equal(dec("-2.00")))
	assert.True(t, NewCalculator(true).Total(order).IsZero())
}

func TestCalculator_EmptyOrder(t *testing.T) {
	assert.True(t, NewCalculator(false).Total(&entity.Order{}).IsZero())
}

func TestLineTotal_MissingItem(t *testing.T) {
	assert.True(t, LineTotal(&entity.OrderItem{Quantity: 3}).IsZero())
	assert.True(t, LineTotal(nil).IsZero())
}

func TestToCents(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"21.00", 2100},
		{"19.999", 1999},
		{"0.01", 1},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCents(dec(tt.amount)))
		})
	}
}
