// Package repository defines the interfaces for the persistence layer.
// Each repository belongs to exactly one store; see the persistence router.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrItemNotFound is returned when no item matches the slug or ID.
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateItem is returned when an item slug is already taken.
	ErrDuplicateItem = errors.New("item slug already exists")
)

// ItemFilter narrows a catalog listing. Query matches the title or the
// category name, case-insensitively.
type ItemFilter struct {
	Query    string
	Category entity.Category
	Limit    int
	Offset   int
}

// ItemRepository is the catalog store boundary.
type ItemRepository interface {
	// CreateItem persists a new catalog item.
	CreateItem(ctx context.Context, item *entity.Item) error

	// FindItemBySlug retrieves an item by its unique slug.
	FindItemBySlug(ctx context.Context, slug string) (*entity.Item, error)

	// FindItemByID retrieves an item by ID.
	FindItemByID(ctx context.Context, id uint) (*entity.Item, error)

	// FindItemsByIDs retrieves the items that exist among ids. Missing IDs are skipped.
	FindItemsByIDs(ctx context.Context, ids []uint) ([]*entity.Item, error)

	// ListItems returns one page of items and the total match count.
	ListItems(ctx context.Context, filter ItemFilter) ([]*entity.Item, int64, error)
}
