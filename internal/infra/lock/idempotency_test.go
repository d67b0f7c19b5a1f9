package lock

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisIdempotencyStore_Lifecycle(t *testing.T) {
	server, client := newTestRedis(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	record, claimed, err := store.Begin(ctx, "payment:1:abc", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Nil(t, record)

	_, _, err = store.Begin(ctx, "payment:1:abc", time.Hour)
	require.ErrorIs(t, err, service.ErrIdempotencyInProgress)

	require.NoError(t, store.Complete(ctx, "payment:1:abc", &service.IdempotencyRecord{RefCode: "abcdefghij0123456789"}, time.Hour))

	record, claimed, err = store.Begin(ctx, "payment:1:abc", time.Hour)
	require.NoError(t, err)
	assert.False(t, claimed)
	require.NotNil(t, record)
	assert.True(t, record.Completed)
	assert.Equal(t, "abcdefghij0123456789", record.RefCode)
	assert.Equal(t, time.Hour, server.TTL(idempotencyKey("payment:1:abc")))
}

func TestRedisIdempotencyStore_AbandonAllowsRetry(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, claimed, err := store.Begin(ctx, "k", time.Hour)
	require.NoError(t, err)
	require.True(t, claimed)

	require.NoError(t, store.Abandon(ctx, "k"))

	_, claimed, err = store.Begin(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestRedisIdempotencyStore_PendingExpires(t *testing.T) {
	server, client := newTestRedis(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	_, claimed, err := store.Begin(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, claimed)

	server.FastForward(2 * time.Minute)

	_, claimed, err = store.Begin(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestNoopIdempotencyStore_AlwaysClaims(t *testing.T) {
	store := NewIdempotencyStore(nil)
	ctx := context.Background()

	for range 2 {
		record, claimed, err := store.Begin(ctx, "k", time.Hour)
		require.NoError(t, err)
		assert.True(t, claimed)
		assert.Nil(t, record)
	}
	require.NoError(t, store.Complete(ctx, "k", &service.IdempotencyRecord{RefCode: "x"}, time.Hour))
	require.NoError(t, store.Abandon(ctx, "k"))
}
