package lock

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedisCartLocker_LockAndRelease(t *testing.T) {
	server, client := newTestRedis(t)
	locker := NewCartLocker(client, time.Second, discardLogger())
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 7)
	require.NoError(t, err)
	assert.True(t, server.Exists(cartLockKey(7)))

	unlock()
	assert.False(t, server.Exists(cartLockKey(7)))

	// Safe to call twice.
	unlock()
}

func TestRedisCartLocker_ContendedLockTimesOut(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewCartLocker(client, 100*time.Millisecond, discardLogger())
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 7)
	require.NoError(t, err)
	defer unlock()

	_, err = locker.Lock(ctx, 7)
	require.ErrorIs(t, err, service.ErrLockNotAcquired)
}

func TestRedisCartLocker_UsersDoNotContend(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewCartLocker(client, time.Second, discardLogger())
	ctx := context.Background()

	unlockA, err := locker.Lock(ctx, 1)
	require.NoError(t, err)
	defer unlockA()

	unlockB, err := locker.Lock(ctx, 2)
	require.NoError(t, err)
	unlockB()
}

func TestRedisCartLocker_StaleReleaseKeepsNewOwner(t *testing.T) {
	server, client := newTestRedis(t)
	locker := NewCartLocker(client, time.Second, discardLogger())
	ctx := context.Background()

	unlockOld, err := locker.Lock(ctx, 7)
	require.NoError(t, err)

	// The first holder's lease expires and a second request takes over.
	server.FastForward(2 * time.Second)
	unlockNew, err := locker.Lock(ctx, 7)
	require.NoError(t, err)

	unlockOld()
	assert.True(t, server.Exists(cartLockKey(7)))

	unlockNew()
	assert.False(t, server.Exists(cartLockKey(7)))
}

func TestRedisCartLocker_WaitsForRelease(t *testing.T) {
	_, client := newTestRedis(t)
	locker := NewCartLocker(client, 2*time.Second, discardLogger())
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, 7)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		unlock()
	}()

	unlock2, err := locker.Lock(ctx, 7)
	require.NoError(t, err)
	unlock2()
}

func TestNewCartLocker_NilClientIsLocal(t *testing.T) {
	locker := NewCartLocker(nil, time.Second, discardLogger())
	_, ok := locker.(*localCartLocker)
	assert.True(t, ok)
}

func TestLocalCartLocker_SerializesPerUser(t *testing.T) {
	locker := NewLocalCartLocker()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, 1)
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, locker.(*localCartLocker).slots)
}

func TestLocalCartLocker_ContextCancelled(t *testing.T) {
	locker := NewLocalCartLocker()

	unlock, err := locker.Lock(context.Background(), 1)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, 1)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
