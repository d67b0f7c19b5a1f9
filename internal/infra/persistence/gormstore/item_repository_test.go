package gormstore_test

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/gormstore"
	"storefront/internal/infra/persistence/gormstore/gormstoretest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItems(t *testing.T, repo repository.ItemRepository) {
	t.Helper()

	fixtures := []struct {
		title    string
		category entity.Category
	}{
		{"Blue Shirt", entity.CategoryShirt},
		{"Red Shirt", entity.CategoryShirt},
		{"Running Tights", entity.CategorySportWear},
		{"Rain Jacket", entity.CategoryOutwear},
	}
	for i, f := range fixtures {
		require.NoError(t, repo.CreateItem(context.Background(), &entity.Item{
			Title:    f.title,
			Price:    decimal.NewFromInt(int64(10 + i)),
			Category: f.category,
			Label:    entity.LabelPrimary,
			Slug:     fmt.Sprintf("item-%d", i),
		}))
	}
}

func TestItemRepository_ListItems(t *testing.T) {
	stores := gormstoretest.Open(t)
	repo := gormstore.NewItemRepository(stores.Routed())
	seedItems(t, repo)

	tests := []struct {
		name      string
		filter    repository.ItemFilter
		wantTotal int64
		wantPage  int
	}{
		{"all", repository.ItemFilter{Limit: 10}, 4, 4},
		{"title match", repository.ItemFilter{Query: "shirt", Limit: 10}, 2, 2},
		{"category name match", repository.ItemFilter{Query: "sport", Limit: 10}, 1, 1},
		{"category filter", repository.ItemFilter{Category: entity.CategoryOutwear, Limit: 10}, 1, 1},
		{"paged", repository.ItemFilter{Limit: 3, Offset: 3}, 4, 1},
		{"no match", repository.ItemFilter{Query: "socks", Limit: 10}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, total, err := repo.ListItems(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, items, tt.wantPage)
		})
	}
}

func TestItemRepository_ListItems_WildcardsMatchLiterally(t *testing.T) {
	stores := gormstoretest.Open(t)
	repo := gormstore.NewItemRepository(stores.Routed())
	seedItems(t, repo)

	for i, title := range []string{"100% Cotton Tee", "Tank_Top", `Back\Pack`} {
		require.NoError(t, repo.CreateItem(context.Background(), &entity.Item{
			Title:    title,
			Price:    decimal.NewFromInt(20),
			Category: entity.CategoryShirt,
			Label:    entity.LabelPrimary,
			Slug:     fmt.Sprintf("literal-%d", i),
		}))
	}

	tests := []struct {
		query     string
		wantTitle string
	}{
		{"%", "100% Cotton Tee"},
		{"_", "Tank_Top"},
		{`\`, `Back\Pack`},
		{"0% c", "100% Cotton Tee"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			items, total, err := repo.ListItems(context.Background(), repository.ItemFilter{Query: tt.query, Limit: 10})
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantTitle, items[0].Title)
		})
	}
}

func TestItemRepository_Lookup(t *testing.T) {
	stores := gormstoretest.Open(t)
	ctx := context.Background()
	repo := gormstore.NewItemRepository(stores.Routed())

	item := &entity.Item{
		Title:         "Jacket",
		Price:         decimal.RequireFromString("10.00"),
		DiscountPrice: decimal.NewNullDecimal(decimal.RequireFromString("8.00")),
		Category:      entity.CategoryOutwear,
		Label:         entity.LabelDanger,
		Slug:          "jacket",
	}
	require.NoError(t, repo.CreateItem(ctx, item))
	assert.ErrorIs(t, repo.CreateItem(ctx, &entity.Item{Title: "x", Slug: "jacket", Category: "S", Label: "P"}), repository.ErrDuplicateItem)

	found, err := repo.FindItemBySlug(ctx, "jacket")
	require.NoError(t, err)
	assert.True(t, found.UnitPrice().Equal(decimal.NewFromInt(8)))

	_, err = repo.FindItemBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrItemNotFound)

	byIDs, err := repo.FindItemsByIDs(ctx, []uint{item.ID, 999})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)
}
