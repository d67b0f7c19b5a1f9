// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies catalog items.
type Category string

const (
	CategoryShirt     Category = "S"
	CategorySportWear Category = "SW"
	CategoryOutwear   Category = "OW"
)

var categoryNames = map[Category]string{
	CategoryShirt:     "Shirt",
	CategorySportWear: "Sport wear",
	CategoryOutwear:   "Outwear",
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]

	return ok
}

// DisplayName returns the human readable category name.
func (c Category) DisplayName() string {
	return categoryNames[c]
}

// Label is the badge style shown next to an item.
type Label string

const (
	LabelPrimary   Label = "P"
	LabelSecondary Label = "S"
	LabelDanger    Label = "D"
)

// Item is a product in the catalog store.
type Item struct {
	ID            uint                `json:"id"`
	Title         string              `json:"title"`
	Price         decimal.Decimal     `json:"price"`
	DiscountPrice decimal.NullDecimal `json:"discount_price"`
	Category      Category            `json:"category"`
	Label         Label               `json:"label"`
	Slug          string              `json:"slug"`
	Description   string              `json:"description"`
	Image         string              `json:"image"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// UnitPrice is the price charged per unit: the discount price when set, otherwise the list price.
func (i *Item) UnitPrice() decimal.Decimal {
	if i.DiscountPrice.Valid {
		return i.DiscountPrice.Decimal
	}

	return i.Price
}
