package userquery

import (
	"context"
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rs/zerolog"

	"github.com/muhittincamdali/go-user-query/cache"
	"github.com/muhittincamdali/go-user-query/telemetry"
	"github.com/muhittincamdali/go-user-query/user"
)

// Service is the user query pipeline. Construction wires the collaborators
// once; the service itself holds no cross-call mutable state beyond the cache
// key registry, so concurrent calls need no locking here. Concurrent calls
// with the same fingerprint are not deduplicated: two callers racing an empty
// cache will both fetch and both write, last write wins.
type Service struct {
	repo      user.Repository
	validator user.Validator
	store     cache.Store
	tracker   telemetry.Tracker
	log       zerolog.Logger

	dispatch map[Filter]fetchFunc
	keys     *xsync.MapOf[string, struct{}]
}

// ServiceOption configures optional collaborators at construction time.
type ServiceOption func(*Service)

// WithStore injects the cache store. Without it the service runs with a
// no-op store and every lookup is a miss.
func WithStore(store cache.Store) ServiceOption {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithTracker injects the telemetry sink. Without it events are discarded.
func WithTracker(t telemetry.Tracker) ServiceOption {
	return func(s *Service) {
		if t != nil {
			s.tracker = t
		}
	}
}

// WithValidator replaces the default record validator.
func WithValidator(v user.Validator) ServiceOption {
	return func(s *Service) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithLogger injects the structured logger used for the cache side channel.
func WithLogger(log zerolog.Logger) ServiceOption {
	return func(s *Service) { s.log = log }
}

// NewService builds the pipeline around the required repository collaborator.
// Cache, telemetry, validator and logger all default to fully functional
// no-op implementations; absence of a collaborator is a valid configuration.
func NewService(repo user.Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:      repo,
		validator: user.NewRecordValidator(),
		store:     cache.NewNoop(),
		tracker:   telemetry.NewNoop(),
		log:       zerolog.Nop(),
		keys:      xsync.NewMapOf[string, struct{}](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dispatch = buildDispatch(s.repo)
	return s
}

// GetUsers retrieves the first page of users with the default page size.
func (s *Service) GetUsers(ctx context.Context) ([]user.User, error) {
	return s.GetUsersPage(ctx, DefaultLimit, 0)
}

// GetUsersPage retrieves up to limit users starting at offset. Results are
// cached under a transparent pagination key for DefaultPageTTL.
func (s *Service) GetUsersPage(ctx context.Context, limit, offset int) ([]user.User, error) {
	start := time.Now()
	params := map[string]any{"limit": limit, "offset": offset}

	if err := ValidatePage(limit, offset); err != nil {
		s.emitError(ctx, EventRetrievalError, start, params, err)
		return nil, err
	}

	key := cache.PageKey(limit, offset)
	if cached, ok := s.cacheProbe(ctx, key); ok {
		if users, ok := cached.([]user.User); ok {
			s.emit(ctx, EventCacheHit, start, map[string]any{"key": key, "count": len(users)})
			s.emit(ctx, EventRetrievalSuccess, start, map[string]any{
				"limit": limit, "offset": offset, "count": len(users), "from_cache": true,
			})
			return cloneUsers(users), nil
		}
	}

	users, err := s.repo.List(ctx, limit, offset, nil)
	if err != nil {
		norm := normalize(err)
		s.emitError(ctx, EventRetrievalError, start, params, norm)
		return nil, norm
	}
	if err := s.validateUsers(users); err != nil {
		s.emitError(ctx, EventRetrievalError, start, params, err)
		return nil, err
	}

	s.cacheFill(ctx, key, users, DefaultPageTTL)

	s.emit(ctx, EventRetrievalSuccess, start, map[string]any{
		"limit": limit, "offset": offset, "count": len(users), "from_cache": false,
	})
	return cloneUsers(users), nil
}

// GetUsersByFilter retrieves the categorical slice selected by filter. This
// path is never cached: caching applies at the pagination and options layers
// only.
func (s *Service) GetUsersByFilter(ctx context.Context, filter Filter) ([]user.User, error) {
	start := time.Now()
	params := map[string]any{"filter": string(filter)}

	users, err := s.strategyFor(filter)(ctx)
	if err != nil {
		norm := normalize(err)
		s.emitError(ctx, EventFilterError, start, params, norm)
		return nil, norm
	}
	if err := s.validateUsers(users); err != nil {
		s.emitError(ctx, EventFilterError, start, params, err)
		return nil, err
	}

	s.emit(ctx, EventFilterSuccess, start, map[string]any{
		"filter": string(filter), "count": len(users),
	})
	return users, nil
}

// GetUsersWithOptions runs the composed query path: validate, probe the
// fingerprint cache, fetch via the filter or pagination path, narrow with the
// boolean filters, sort the narrowed set, validate records, build metadata
// and assemble the envelope. The fetch always precedes narrowing, and the
// sort always sees the fully narrowed set.
func (s *Service) GetUsersWithOptions(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	params := map[string]any{
		"limit":     opts.Limit,
		"offset":    opts.Offset,
		"filter":    string(opts.Filter),
		"sort_by":   string(opts.SortBy),
		"use_cache": opts.UseCache,
	}

	if err := opts.Validate(); err != nil {
		s.emitError(ctx, EventQueryError, start, params, err)
		return nil, err
	}

	var key string
	if opts.UseCache {
		k, err := opts.CacheKey()
		if err != nil {
			// Fingerprinting failures degrade to an uncached call.
			s.log.Warn().Err(err).Msg("options fingerprint failed")
		} else {
			key = k
			if cached, ok := s.cacheProbe(ctx, key); ok {
				if res, ok := cached.(Result); ok {
					res.Metadata.FromCache = true
					s.emit(ctx, EventCacheHit, start, map[string]any{"key": key, "count": res.TotalCount})
					s.emit(ctx, EventQuerySuccess, start, map[string]any{
						"count": res.TotalCount, "from_cache": true,
					})
					return &res, nil
				}
			}
		}
	}

	var (
		users []user.User
		err   error
	)
	filterApplied := opts.Filter != ""
	if filterApplied {
		users, err = s.strategyFor(opts.Filter)(ctx)
	} else {
		users, err = s.repo.List(ctx, opts.Limit, opts.Offset, nil)
	}
	if err != nil {
		norm := normalize(err)
		s.emitError(ctx, EventQueryError, start, params, norm)
		return nil, norm
	}

	users = narrow(users, opts.ActiveOnly, opts.AdminsOnly)
	sortApplied := knownSortKey(opts.SortBy)
	if sortApplied {
		sortUsers(users, opts.SortBy)
	}

	if err := s.validateUsers(users); err != nil {
		s.emitError(ctx, EventQueryError, start, params, err)
		return nil, err
	}

	meta := buildMetadata(users, filterApplied || opts.ActiveOnly || opts.AdminsOnly, sortApplied)
	res := newResult(users, opts.Limit, meta)

	if opts.UseCache && key != "" {
		s.cacheFill(ctx, key, res, opts.ttl())
	}

	s.emit(ctx, EventQuerySuccess, start, map[string]any{
		"count": res.TotalCount, "from_cache": false,
	})
	return &res, nil
}

// InvalidateUsers drops every cache entry this service has written. Useful
// after out-of-band mutations to the underlying user store.
func (s *Service) InvalidateUsers(ctx context.Context) error {
	var firstErr error
	s.keys.Range(func(key string, _ struct{}) bool {
		if err := s.store.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
		s.keys.Delete(key)
		return true
	})
	return firstErr
}

// cacheProbe reads the store, treating failures as misses. Failures surface
// on the log side channel only; they never fail the request.
func (s *Service) cacheProbe(ctx context.Context, key string) (any, bool) {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}
	return v, ok
}

// cacheFill writes the store and registers the key for invalidation. Write
// failures are swallowed after logging: caching is an optimization, never a
// correctness dependency.
func (s *Service) cacheFill(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := s.store.Set(ctx, key, value, ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		return
	}
	s.keys.Store(key, struct{}{})
}

// cloneUsers returns a fresh slice so callers and the cache never share a
// backing array.
func cloneUsers(users []user.User) []user.User {
	return append([]user.User(nil), users...)
}

// validateUsers rejects result sets containing malformed records.
func (s *Service) validateUsers(users []user.User) error {
	for _, u := range users {
		if err := s.validator.ValidateUser(u); err != nil {
			return wrapError(KindValidation, err, fmt.Sprintf("user %q failed validation", u.ID))
		}
	}
	return nil
}
