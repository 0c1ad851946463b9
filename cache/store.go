package cache

import (
	"context"
	"time"
)

// Store is the key-value port the query pipeline consumes. Entries are
// written with their own time-to-live; an expired entry behaves exactly like
// a missing one. Both operations may fail; callers decide whether a failure
// is fatal (the pipeline treats every store failure as a miss).
type Store interface {
	// Get returns the value stored under key and whether it was present and
	// unexpired.
	Get(ctx context.Context, key string) (any, bool, error)
	// Set stores value under key for ttl. A non-positive ttl falls back to
	// the store's default.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Delete removes the entry stored under key, if any.
	Delete(ctx context.Context, key string) error
}

// Noop is a Store that holds nothing. It turns every lookup into a miss and
// accepts every write, which makes an absent cache a fully functional
// configuration rather than a nil check at each call site.
type Noop struct{}

// NewNoop returns a Store that caches nothing.
func NewNoop() Noop { return Noop{} }

func (Noop) Get(context.Context, string) (any, bool, error) { return nil, false, nil }

func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }

func (Noop) Delete(context.Context, string) error { return nil }
