package lock

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
)

const defaultIdempotencyTTL = 24 * time.Hour

// redisIdempotencyStore keeps one JSON record per key. A pending record marks
// an in-flight request; a completed record carries the outcome.
type redisIdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore returns a Redis-backed store, or one that never deduplicates when client is nil.
func NewIdempotencyStore(client *redis.Client) service.IdempotencyStore {
	if client == nil {
		return noopIdempotencyStore{}
	}

	return &redisIdempotencyStore{client: client}
}

func idempotencyKey(key string) string {
	return fmt.Sprintf("idem:%s", key)
}

func (s *redisIdempotencyStore) Begin(ctx context.Context, key string, ttl time.Duration) (*service.IdempotencyRecord, bool, error) {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}

	pending, err := json.Marshal(service.IdempotencyRecord{})
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	claimed, err := s.client.SetNX(ctx, idempotencyKey(key), pending, ttl).Result()
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to claim idempotency key")
	}
	if claimed {
		return nil, true, nil
	}

	data, err := s.client.Get(ctx, idempotencyKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		// Expired between SETNX and GET; let the client retry.
		return nil, false, service.ErrIdempotencyInProgress
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read idempotency key")
	}

	var record service.IdempotencyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false, errors.Wrap(err, "corrupt idempotency record")
	}
	if !record.Completed {
		return nil, false, service.ErrIdempotencyInProgress
	}

	return &record, false, nil
}

func (s *redisIdempotencyStore) Complete(ctx context.Context, key string, record *service.IdempotencyRecord, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}

	stored := *record
	stored.Completed = true

	data, err := json.Marshal(stored)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(s.client.Set(ctx, idempotencyKey(key), data, ttl).Err(), "failed to store idempotency record")
}

func (s *redisIdempotencyStore) Abandon(ctx context.Context, key string) error {
	return errors.Wrap(s.client.Del(ctx, idempotencyKey(key)).Err(), "failed to release idempotency key")
}

type noopIdempotencyStore struct{}

func (noopIdempotencyStore) Begin(context.Context, string, time.Duration) (*service.IdempotencyRecord, bool, error) {
	return nil, true, nil
}

func (noopIdempotencyStore) Complete(context.Context, string, *service.IdempotencyRecord, time.Duration) error {
	return nil
}

func (noopIdempotencyStore) Abandon(context.Context, string) error {
	return nil
}
