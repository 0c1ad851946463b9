package userquery

import (
	"errors"
	"fmt"

	"github.com/muhittincamdali/go-user-query/user"
)

// Kind identifies one member of the closed error taxonomy exposed by the
// query pipeline. Every error leaving a public entry point carries exactly
// one Kind; callers can base display and retry decisions on it alone.
type Kind string

const (
	KindInvalidLimit     Kind = "invalid_limit"
	KindInvalidOffset    Kind = "invalid_offset"
	KindNetwork          Kind = "network_error"
	KindDatabase         Kind = "database_error"
	KindValidation       Kind = "validation_error"
	KindPermissionDenied Kind = "permission_denied"
	KindRateLimited      Kind = "rate_limit_exceeded"
	KindServer           Kind = "server_error"
	KindUnknown          Kind = "unknown"
)

// Error is the taxonomy error type. It wraps the underlying cause (when one
// exists) so errors.Is and errors.As keep working through it.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func wrapError(kind Kind, cause error, msg string) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

// Kind returns the taxonomy member this error belongs to.
func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is lets callers match taxonomy errors by kind using errors.Is with a bare
// *Error carrying only a Kind, e.g. errors.Is(err, &Error{kind: KindNetwork}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind
}

// KindOf classifies any error. Taxonomy errors report their own kind; nil
// reports the empty Kind; everything else is KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// normalize maps an arbitrary failure into the taxonomy. It is applied once,
// at the boundary of each public entry point, after the failure telemetry has
// been emitted. Errors that already belong to the taxonomy pass through
// untouched; storage sentinels map 1:1; anything unrecognized (including
// context cancellation from a collaborator) becomes KindUnknown wrapping the
// original cause.
func normalize(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	switch {
	case errors.Is(err, user.ErrNetwork):
		return wrapError(KindNetwork, err, "user retrieval failed")
	case errors.Is(err, user.ErrDatabase):
		return wrapError(KindDatabase, err, "user retrieval failed")
	case errors.Is(err, user.ErrValidation):
		return wrapError(KindValidation, err, "storage returned an invalid record")
	case errors.Is(err, user.ErrPermissionDenied):
		return wrapError(KindPermissionDenied, err, "user retrieval not permitted")
	case errors.Is(err, user.ErrRateLimited):
		return wrapError(KindRateLimited, err, "user retrieval throttled")
	case errors.Is(err, user.ErrServer):
		return wrapError(KindServer, err, "user retrieval failed upstream")
	}
	return wrapError(KindUnknown, err, "user retrieval failed")
}
