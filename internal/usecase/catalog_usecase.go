// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the read side of the item catalog.
type CatalogUsecase interface {
	ListItems(ctx context.Context, input *ListItemsInput) (*ItemPage, error)
	GetItem(ctx context.Context, slug string) (*entity.Item, error)
}

// --- Input DTOs ---

// ListItemsInput filters the catalog. Page is 1-based; values below 1 mean the first page.
type ListItemsInput struct {
	Query    string          `json:"q"`
	Category entity.Category `json:"category"`
	Page     int             `json:"page"`
}

// --- Output DTOs ---

// ItemPage is one page of catalog items.
type ItemPage struct {
	Items      []*entity.Item `json:"items"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
}
