package userquery

import (
	"context"

	"github.com/muhittincamdali/go-user-query/user"
)

// bulkFetchLimit caps the FilterAll strategy, which would otherwise ask the
// repository for an unbounded range.
const bulkFetchLimit = MaxLimit

// fetchFunc is one retrieval strategy against the repository.
type fetchFunc func(ctx context.Context) ([]user.User, error)

// buildDispatch maps every filter variant to its repository strategy. Keeping
// this a table (rather than a switch in the entry point) lets each strategy
// be exercised in isolation and new variants slot in without touching the
// pipeline flow.
func buildDispatch(repo user.Repository) map[Filter]fetchFunc {
	return map[Filter]fetchFunc{
		FilterAll: func(ctx context.Context) ([]user.User, error) {
			return repo.List(ctx, bulkFetchLimit, 0, nil)
		},
		FilterActive:   repo.ListActive,
		FilterInactive: repo.ListInactive,
		FilterAdmins: func(ctx context.Context) ([]user.User, error) {
			return repo.ListByRole(ctx, user.RoleAdmin)
		},
		FilterModerators: func(ctx context.Context) ([]user.User, error) {
			return repo.ListByRole(ctx, user.RoleModerator)
		},
		FilterMembers: func(ctx context.Context) ([]user.User, error) {
			return repo.ListByRole(ctx, user.RoleUser)
		},
	}
}

// strategyFor resolves the fetch strategy for a filter. Unrecognized filters
// fall back to the bulk strategy.
func (s *Service) strategyFor(f Filter) fetchFunc {
	if fn, ok := s.dispatch[f]; ok {
		return fn
	}
	return s.dispatch[FilterAll]
}
