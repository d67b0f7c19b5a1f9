package impl

import (
	"context"
	"math"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListItems_Paging(t *testing.T) {
	tests := []struct {
		name       string
		input      *usecase.ListItemsInput
		wantFilter repository.ItemFilter
		total      int64
		wantPages  int
		wantPage   int
	}{
		{
			name:       "first page by default",
			input:      &usecase.ListItemsInput{Query: "  shirt "},
			wantFilter: repository.ItemFilter{Query: "shirt", Limit: 10, Offset: 0},
			total:      21,
			wantPages:  3,
			wantPage:   1,
		},
		{
			name:       "third page with category",
			input:      &usecase.ListItemsInput{Category: entity.CategoryOutwear, Page: 3},
			wantFilter: repository.ItemFilter{Category: entity.CategoryOutwear, Limit: 10, Offset: 20},
			total:      20,
			wantPages:  2,
			wantPage:   3,
		},
		{
			name:       "empty catalog",
			input:      &usecase.ListItemsInput{Page: -4},
			wantFilter: repository.ItemFilter{Limit: 10},
			total:      0,
			wantPages:  0,
			wantPage:   1,
		},
		{
			name:       "huge page is capped",
			input:      &usecase.ListItemsInput{Page: math.MaxInt},
			wantFilter: repository.ItemFilter{Limit: 10, Offset: (constants.MaxCatalogPage - 1) * 10},
			total:      5,
			wantPages:  1,
			wantPage:   constants.MaxCatalogPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := mockRepo.NewMockItemRepository(t)
			items.EXPECT().ListItems(context.Background(), tt.wantFilter).Return([]*entity.Item{}, tt.total, nil)

			page, err := NewCatalogService(items, discardLogger()).ListItems(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, 10, page.PerPage)
		})
	}
}

func TestCatalogService_ListItems_InvalidCategory(t *testing.T) {
	items := mockRepo.NewMockItemRepository(t)

	_, err := NewCatalogService(items, discardLogger()).ListItems(context.Background(), &usecase.ListItemsInput{Category: "XX"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_GetItem(t *testing.T) {
	ctx := context.Background()
	items := mockRepo.NewMockItemRepository(t)
	want := &entity.Item{ID: 1, Slug: "blue-shirt"}
	items.EXPECT().FindItemBySlug(ctx, "blue-shirt").Return(want, nil)
	items.EXPECT().FindItemBySlug(ctx, "missing").Return(nil, repository.ErrItemNotFound)
	items.EXPECT().FindItemBySlug(ctx, "broken").Return(nil, errors.New("db down"))
	svc := NewCatalogService(items, discardLogger())

	got, err := svc.GetItem(ctx, "blue-shirt")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.GetItem(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)

	_, err = svc.GetItem(ctx, "broken")
	assert.ErrorContains(t, err, "failed to find item")
}
