package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheFixtures struct {
	repo   repository.ItemRepository
	next   *mockRepo.MockItemRepository
	server *miniredis.Miniredis
}

func createTestCache(t *testing.T) cacheFixtures {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	next := mockRepo.NewMockItemRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return cacheFixtures{
		repo:   NewCachedItemRepository(next, client, time.Minute, logger),
		next:   next,
		server: server,
	}
}

func testItem() *entity.Item {
	return &entity.Item{
		ID:            3,
		Title:         "Linen shirt",
		Price:         decimal.RequireFromString("10.00"),
		DiscountPrice: decimal.NewNullDecimal(decimal.RequireFromString("8.00")),
		Category:      entity.CategoryShirt,
		Label:         entity.LabelPrimary,
		Slug:          "linen-shirt",
	}
}

func TestCachedItemRepository_FindItemBySlug_ReadThrough(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	item := testItem()

	// Only the first lookup reaches the store.
	fx.next.EXPECT().FindItemBySlug(ctx, "linen-shirt").Return(item, nil).Once()

	first, err := fx.repo.FindItemBySlug(ctx, "linen-shirt")
	require.NoError(t, err)
	second, err := fx.repo.FindItemBySlug(ctx, "linen-shirt")
	require.NoError(t, err)

	assert.Equal(t, item.ID, first.ID)
	assert.Equal(t, item.ID, second.ID)
	assert.True(t, second.UnitPrice().Equal(decimal.RequireFromString("8.00")))
	assert.True(t, fx.server.Exists(itemSlugKey("linen-shirt")))

	ttl := fx.server.TTL(itemSlugKey("linen-shirt"))
	assert.Equal(t, time.Minute, ttl)
}

func TestCachedItemRepository_FindItemByID_Expiry(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	item := testItem()

	fx.next.EXPECT().FindItemByID(ctx, uint(3)).Return(item, nil).Twice()

	_, err := fx.repo.FindItemByID(ctx, 3)
	require.NoError(t, err)

	fx.server.FastForward(2 * time.Minute)

	_, err = fx.repo.FindItemByID(ctx, 3)
	require.NoError(t, err)
}

func TestCachedItemRepository_NotFoundIsNotCached(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()

	fx.next.EXPECT().FindItemBySlug(ctx, "missing").Return(nil, repository.ErrItemNotFound).Twice()

	_, err := fx.repo.FindItemBySlug(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrItemNotFound)
	_, err = fx.repo.FindItemBySlug(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrItemNotFound)

	assert.False(t, fx.server.Exists(itemSlugKey("missing")))
}

func TestCachedItemRepository_RedisDownFallsBackToStore(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	item := testItem()
	fx.server.Close()

	fx.next.EXPECT().FindItemBySlug(ctx, "linen-shirt").Return(item, nil).Once()

	got, err := fx.repo.FindItemBySlug(ctx, "linen-shirt")
	require.NoError(t, err)
	assert.Equal(t, item.Slug, got.Slug)
}

func TestCachedItemRepository_CorruptEntryReloaded(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	item := testItem()
	require.NoError(t, fx.server.Set(itemSlugKey("linen-shirt"), "{not json"))

	fx.next.EXPECT().FindItemBySlug(ctx, "linen-shirt").Return(item, nil).Once()

	got, err := fx.repo.FindItemBySlug(ctx, "linen-shirt")
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
}

func TestCachedItemRepository_ListingBypassesCache(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	filter := repository.ItemFilter{Query: "shirt", Limit: 10}

	fx.next.EXPECT().ListItems(ctx, filter).Return([]*entity.Item{testItem()}, int64(1), nil).Twice()

	for range 2 {
		items, total, err := fx.repo.ListItems(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(1), total)
	}
}

func TestCachedItemRepository_CreateInvalidates(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	item := testItem()
	require.NoError(t, fx.server.Set(itemSlugKey(item.Slug), "stale"))

	fx.next.EXPECT().CreateItem(ctx, item).Return(nil)

	require.NoError(t, fx.repo.CreateItem(ctx, item))
	assert.False(t, fx.server.Exists(itemSlugKey(item.Slug)))
}

func TestNewCachedItemRepository_NilClient(t *testing.T) {
	next := mockRepo.NewMockItemRepository(t)

	repo := NewCachedItemRepository(next, nil, time.Minute, slog.Default())
	assert.Same(t, next, repo)
}
