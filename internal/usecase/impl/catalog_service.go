package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	items  repository.ItemRepository
	logger *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(items repository.ItemRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		items:  items,
		logger: logger,
	}
}

// ListItems returns one page of items matching the query and category.
func (srv *catalogService) ListItems(ctx context.Context, input *usecase.ListItemsInput) (*usecase.ItemPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	if page > constants.MaxCatalogPage {
		page = constants.MaxCatalogPage
	}

	if input.Category != "" && !input.Category.Valid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{
			"category": "must be one of S, SW, OW",
		})
	}

	filter := repository.ItemFilter{
		Query:    strings.TrimSpace(input.Query),
		Category: input.Category,
		Limit:    constants.ItemsPerPage,
		Offset:   (page - 1) * constants.ItemsPerPage,
	}

	items, total, err := srv.items.ListItems(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	totalPages := int((total + constants.ItemsPerPage - 1) / constants.ItemsPerPage)

	return &usecase.ItemPage{
		Items:      items,
		Page:       page,
		PerPage:    constants.ItemsPerPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// GetItem retrieves a single item by slug.
func (srv *catalogService) GetItem(ctx context.Context, slug string) (*entity.Item, error) {
	item, err := srv.items.FindItemBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}
