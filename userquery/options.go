package userquery

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/muhittincamdali/go-user-query/cache"
)

// Filter selects a categorical slice of the user population. It is a pure
// selector with no state.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterActive     Filter = "active"
	FilterInactive   Filter = "inactive"
	FilterAdmins     Filter = "admin"
	FilterModerators Filter = "moderator"
	FilterMembers    Filter = "user"
)

// SortBy names one of the supported total orders over users.
type SortBy string

const (
	SortByName      SortBy = "name"
	SortByEmail     SortBy = "email"
	SortByRole      SortBy = "role"
	SortByCreatedAt SortBy = "created_at"
	SortByUpdatedAt SortBy = "updated_at"
)

const (
	// MinLimit and MaxLimit bound the page size of every request.
	MinLimit = 1
	MaxLimit = 1000

	// DefaultLimit is the page size used by the argument-less entry point.
	DefaultLimit = 100

	// DefaultPageTTL is the cache lifetime for raw pagination results.
	DefaultPageTTL = 300 * time.Second

	// DefaultOptionsTTL is the cache lifetime for option-based results when
	// the caller does not configure one.
	DefaultOptionsTTL = 5 * time.Minute
)

// Options is the immutable configuration value for the composed query path.
// The zero value is not useful; start from DefaultOptions and adjust.
type Options struct {
	// Limit is the requested page size, between MinLimit and MaxLimit.
	Limit int
	// Offset is the number of records to skip, never negative.
	Offset int
	// Filter, when set, routes the fetch through the categorical filter path
	// instead of raw pagination.
	Filter Filter
	// SortBy, when set, orders the final (already narrowed) result set.
	SortBy SortBy
	// ActiveOnly narrows the fetched set to active users.
	ActiveOnly bool
	// AdminsOnly narrows the fetched set to admin users.
	AdminsOnly bool
	// UseCache enables the fingerprint-keyed result cache for this request.
	UseCache bool
	// CacheTTL is the entry lifetime when UseCache is set. Non-positive
	// values fall back to DefaultOptionsTTL.
	CacheTTL time.Duration
}

// DefaultOptions returns the baseline configuration: first page of
// DefaultLimit users, caching enabled with the default TTL.
func DefaultOptions() Options {
	return Options{
		Limit:    DefaultLimit,
		UseCache: true,
		CacheTTL: DefaultOptionsTTL,
	}
}

// ValidatePage checks raw pagination parameters. It is pure: no I/O, no side
// effects. Failures carry KindInvalidLimit or KindInvalidOffset.
func ValidatePage(limit, offset int) error {
	// Threshold rules skip zero values, so Required must reject limit=0
	// before Min gets a say.
	if err := validation.Validate(limit, validation.Required, validation.Min(MinLimit), validation.Max(MaxLimit)); err != nil {
		return wrapError(KindInvalidLimit, err, "limit must be between 1 and 1000")
	}
	if err := validation.Validate(offset, validation.Min(0)); err != nil {
		return wrapError(KindInvalidOffset, err, "offset must not be negative")
	}
	return nil
}

// Validate checks the options value. Filter and SortBy values are accepted
// unconditionally; unrecognized filters fall back to the bulk fetch path.
func (o Options) Validate() error {
	return ValidatePage(o.Limit, o.Offset)
}

// optionsKeyScope prefixes every fingerprinted options cache key.
const optionsKeyScope = "users_opts"

// optionsKey is the canonical projection of Options used for fingerprinting.
// Only fields that influence the result set participate; UseCache and
// CacheTTL change caching behavior, not the answer, so two requests that
// differ only there share an entry.
type optionsKey struct {
	Limit      int    `msgpack:"limit"`
	Offset     int    `msgpack:"offset"`
	Filter     string `msgpack:"filter"`
	SortBy     string `msgpack:"sort_by"`
	ActiveOnly bool   `msgpack:"active_only"`
	AdminsOnly bool   `msgpack:"admins_only"`
}

// CacheKey derives the deterministic fingerprint for this options value.
func (o Options) CacheKey() (string, error) {
	return cache.Fingerprint(optionsKeyScope, optionsKey{
		Limit:      o.Limit,
		Offset:     o.Offset,
		Filter:     string(o.Filter),
		SortBy:     string(o.SortBy),
		ActiveOnly: o.ActiveOnly,
		AdminsOnly: o.AdminsOnly,
	})
}

// ttl returns the effective cache lifetime for this options value.
func (o Options) ttl() time.Duration {
	if o.CacheTTL > 0 {
		return o.CacheTTL
	}
	return DefaultOptionsTTL
}
