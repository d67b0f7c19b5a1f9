// Package model holds the GORM persistence structs. Each model carries the
// routing metadata the store router uses to place its table.
package model

import (
	"time"

	"storefront/internal/infra/persistence/dbrouter"

	"github.com/shopspring/decimal"
)

// ItemModel mirrors the 'items' table in the catalog store.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ItemModel struct {
	ID            uint                `gorm:"primaryKey;autoIncrement"`
	Title         string              `gorm:"type:varchar(100);not null"`
	Price         decimal.Decimal     `gorm:"type:numeric(10,2);not null"`
	DiscountPrice decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Category      string              `gorm:"type:varchar(2);not null;index"`
	Label         string              `gorm:"type:varchar(1);not null"`
	Slug          string              `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description   string              `gorm:"type:text"`
	Image         string              `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// RouteMeta places items in the catalog store.
func (ItemModel) RouteMeta() dbrouter.Meta {
	return dbrouter.Meta{App: "core", Model: "item"}
}
