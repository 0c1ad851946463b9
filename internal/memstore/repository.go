// Package memstore provides a seedable in-memory user.Repository. It backs
// the example program and the integration tests; real deployments supply
// their own repository implementation.
package memstore

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/muhittincamdali/go-user-query/user"
)

// Repository is an in-memory user store safe for concurrent use.
type Repository struct {
	users *xsync.MapOf[string, user.User]

	mu      sync.RWMutex
	failErr error

	calls atomic.Int64
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{users: xsync.NewMapOf[string, user.User]()}
}

// Seed inserts or replaces the given users.
func (r *Repository) Seed(users ...user.User) {
	for _, u := range users {
		r.users.Store(u.ID, u)
	}
}

// FailWith makes every subsequent call return err. Pass nil to restore
// normal operation. Use the user package sentinels to exercise specific
// storage error kinds.
func (r *Repository) FailWith(err error) {
	r.mu.Lock()
	r.failErr = err
	r.mu.Unlock()
}

// Calls reports how many fetch operations have reached the repository. Cache
// idempotence tests assert on this.
func (r *Repository) Calls() int64 {
	return r.calls.Load()
}

func (r *Repository) enter() error {
	r.calls.Add(1)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.failErr
}

// snapshot returns all users in a deterministic order: newest CreatedAt
// first, ID as tie-breaker. xsync.MapOf iteration order is random, so the
// ordering here is what makes pagination reproducible.
func (r *Repository) snapshot() []user.User {
	out := make([]user.User, 0, r.users.Size())
	r.users.Range(func(_ string, u user.User) bool {
		out = append(out, u)
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// List implements user.Repository.
func (r *Repository) List(ctx context.Context, limit, offset int, isActive *bool) ([]user.User, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := r.snapshot()
	if isActive != nil {
		filtered := all[:0]
		for _, u := range all {
			if u.IsActive == *isActive {
				filtered = append(filtered, u)
			}
		}
		all = filtered
	}

	if offset >= len(all) {
		return []user.User{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return append([]user.User(nil), all...), nil
}

// ListActive implements user.Repository.
func (r *Repository) ListActive(ctx context.Context) ([]user.User, error) {
	return r.listWhere(ctx, func(u user.User) bool { return u.IsActive })
}

// ListInactive implements user.Repository.
func (r *Repository) ListInactive(ctx context.Context) ([]user.User, error) {
	return r.listWhere(ctx, func(u user.User) bool { return !u.IsActive })
}

// ListByRole implements user.Repository.
func (r *Repository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return r.listWhere(ctx, func(u user.User) bool { return u.Role == role })
}

func (r *Repository) listWhere(ctx context.Context, keep func(user.User) bool) ([]user.User, error) {
	if err := r.enter(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]user.User, 0)
	for _, u := range r.snapshot() {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out, nil
}
