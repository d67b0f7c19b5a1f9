// Package lock serializes per-user work and deduplicates client retries.
package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL   = 30 * time.Second
	lockRetryBackoff = 25 * time.Millisecond
)

// releaseScript deletes the lock only when the caller still owns it.
//
//nolint:gochecknoglobals
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisCartLocker holds a SET NX PX lock per user.
type redisCartLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCartLocker returns a Redis-backed locker, or a process-local one when client is nil.
func NewCartLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.CartLocker {
	if client == nil {
		return NewLocalCartLocker()
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &redisCartLocker{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cartLockKey(userID uint) string {
	return fmt.Sprintf("cart:lock:%d", userID)
}

// Lock polls until the key is acquired or the wait budget runs out.
// The wait budget is the lock TTL, so a crashed holder never blocks longer than that.
func (l *redisCartLocker) Lock(ctx context.Context, userID uint) (func(), error) {
	key := cartLockKey(userID)
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	ticker := time.NewTicker(lockRetryBackoff)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(waitCtx, key, token, l.ttl).Result()
		if err != nil && !errors.IsAny(err, context.DeadlineExceeded, context.Canceled) {
			return nil, errors.Wrap(err, "failed to acquire cart lock")
		}
		if ok {
			return l.releaser(key, token), nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, errors.WithStack(ctx.Err())
			}

			return nil, service.ErrLockNotAcquired
		case <-ticker.C:
		}
	}
}

func (l *redisCartLocker) releaser(key, token string) func() {
	var once sync.Once

	return func() {
		once.Do(func() {
			// Release must outlive a cancelled request context.
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
				l.logger.Warn("Failed to release cart lock",
					slog.String("key", key),
					slog.Any("error", err),
				)
			}
		})
	}
}

// localCartLocker is a keyed mutex for single-process deployments.
type localCartLocker struct {
	mu    sync.Mutex
	slots map[uint]*lockSlot
}

type lockSlot struct {
	ch   chan struct{}
	refs int
}

// NewLocalCartLocker returns an in-process keyed mutex.
func NewLocalCartLocker() service.CartLocker {
	return &localCartLocker{slots: make(map[uint]*lockSlot)}
}

func (l *localCartLocker) acquireSlot(userID uint) *lockSlot {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[userID]
	if !ok {
		slot = &lockSlot{ch: make(chan struct{}, 1)}
		l.slots[userID] = slot
	}
	slot.refs++

	return slot
}

func (l *localCartLocker) releaseSlot(userID uint, slot *lockSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, userID)
	}
}

func (l *localCartLocker) Lock(ctx context.Context, userID uint) (func(), error) {
	slot := l.acquireSlot(userID)

	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		l.releaseSlot(userID, slot)

		return nil, errors.WithStack(ctx.Err())
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			<-slot.ch
			l.releaseSlot(userID, slot)
		})
	}, nil
}
