package service

import (
	"context"
	"time"

	"storefront/internal/errors"
)

// ErrLockNotAcquired is returned when a lock stays held past the wait budget.
var ErrLockNotAcquired = errors.New("lock not acquired")

// ErrIdempotencyInProgress is returned when the same key is already being processed.
var ErrIdempotencyInProgress = errors.New("request with this idempotency key is in progress")

// CartLocker serializes cart mutations per user.
type CartLocker interface {
	// Lock blocks until the user's cart lock is held or ctx is done.
	// The returned func releases the lock and is safe to call once.
	Lock(ctx context.Context, userID uint) (unlock func(), err error)
}

// IdempotencyRecord is the stored outcome of a completed request.
type IdempotencyRecord struct {
	Completed bool   `json:"completed"`
	RefCode   string `json:"ref_code,omitempty"`
}

// IdempotencyStore remembers the outcome of client-keyed requests.
type IdempotencyStore interface {
	// Begin claims key. If the key already completed, the stored record is returned
	// with claimed=false. If another request holds it, ErrIdempotencyInProgress is returned.
	Begin(ctx context.Context, key string, ttl time.Duration) (record *IdempotencyRecord, claimed bool, err error)

	// Complete stores the outcome for key.
	Complete(ctx context.Context, key string, record *IdempotencyRecord, ttl time.Duration) error

	// Abandon releases a claimed key so the client may retry.
	Abandon(ctx context.Context, key string) error
}
