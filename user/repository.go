package user

import (
	"context"
	"errors"
)

// Storage error kinds. A Repository implementation must surface every failure
// as (or wrapped around) exactly one of these sentinels so callers can map it
// with errors.Is. Anything else is treated as an unknown failure upstream.
var (
	ErrNetwork          = errors.New("user storage: network failure")
	ErrDatabase         = errors.New("user storage: database failure")
	ErrValidation       = errors.New("user storage: invalid record")
	ErrPermissionDenied = errors.New("user storage: permission denied")
	ErrRateLimited      = errors.New("user storage: rate limit exceeded")
	ErrServer           = errors.New("user storage: server failure")
)

// Repository defines the read operations the query pipeline consumes.
// Implementations carry their own timeout and cancellation semantics; the
// pipeline only propagates what they return.
type Repository interface {
	// List returns up to limit users starting at offset. When isActive is
	// non-nil the result is additionally narrowed by the active flag (the
	// pointer distinguishes "false" from "not set").
	List(ctx context.Context, limit, offset int, isActive *bool) ([]User, error)
	// ListActive returns every active user.
	ListActive(ctx context.Context) ([]User, error)
	// ListInactive returns every inactive user.
	ListInactive(ctx context.Context) ([]User, error)
	// ListByRole returns every user with the given role.
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
