package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultItemTTL = 10 * time.Minute

// cachedItemRepository is a read-through cache in front of the catalog store.
// Single-item lookups are cached; listings always hit the store.
type cachedItemRepository struct {
	next   repository.ItemRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedItemRepository wraps next with a Redis cache. A nil client returns next unchanged.
func NewCachedItemRepository(next repository.ItemRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) repository.ItemRepository {
	if client == nil {
		return next
	}
	if ttl <= 0 {
		ttl = defaultItemTTL
	}

	return &cachedItemRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func itemSlugKey(slug string) string {
	return fmt.Sprintf("catalog:item:slug:%s", slug)
}

func itemIDKey(id uint) string {
	return fmt.Sprintf("catalog:item:id:%d", id)
}

func (r *cachedItemRepository) CreateItem(ctx context.Context, item *entity.Item) error {
	if err := r.next.CreateItem(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, itemSlugKey(item.Slug), itemIDKey(item.ID))

	return nil
}

func (r *cachedItemRepository) FindItemBySlug(ctx context.Context, slug string) (*entity.Item, error) {
	return r.readThrough(ctx, itemSlugKey(slug), func() (*entity.Item, error) {
		return r.next.FindItemBySlug(ctx, slug)
	})
}

func (r *cachedItemRepository) FindItemByID(ctx context.Context, id uint) (*entity.Item, error) {
	return r.readThrough(ctx, itemIDKey(id), func() (*entity.Item, error) {
		return r.next.FindItemByID(ctx, id)
	})
}

func (r *cachedItemRepository) FindItemsByIDs(ctx context.Context, ids []uint) ([]*entity.Item, error) {
	return r.next.FindItemsByIDs(ctx, ids)
}

func (r *cachedItemRepository) ListItems(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, int64, error) {
	return r.next.ListItems(ctx, filter)
}

// readThrough serves key from Redis, loading and storing it on a miss.
// Redis failures degrade to a direct store read.
func (r *cachedItemRepository) readThrough(ctx context.Context, key string, load func() (*entity.Item, error)) (*entity.Item, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var item entity.Item
		if jsonErr := json.Unmarshal(data, &item); jsonErr == nil {
			return &item, nil
		}
		r.logger.Warn("Dropping undecodable catalog cache entry", slog.String("key", key))
		r.invalidate(ctx, key)
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("Catalog cache read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	item, err := load()
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(item)
	if err != nil {
		return item, nil
	}
	if err := r.client.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
		r.logger.Warn("Catalog cache write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	return item, nil
}

func (r *cachedItemRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("Catalog cache invalidation failed", slog.Any("error", err))
	}
}
