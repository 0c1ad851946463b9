package userquery

import (
	"time"

	"github.com/muhittincamdali/go-user-query/user"
)

// Metadata is the derived aggregate attached to every Result. It is computed
// fresh on each call from the final (filtered and sorted) set and never
// persisted. The counts always partition the result: ActiveCount +
// InactiveCount == TotalCount == len(Users).
type Metadata struct {
	// RetrievedAt is when the underlying fetch completed.
	RetrievedAt time.Time `json:"retrieved_at"`

	TotalCount    int               `json:"total_count"`
	ActiveCount   int               `json:"active_count"`
	InactiveCount int               `json:"inactive_count"`
	RoleCounts    map[user.Role]int `json:"role_counts"`

	// Path flags record how the result was produced. They exist for
	// observability only and never influence behavior.
	FromCache     bool `json:"from_cache"`
	FilterApplied bool `json:"filter_applied"`
	SortApplied   bool `json:"sort_applied"`
}

// Result is the envelope returned by the options-based query path.
type Result struct {
	Users []user.User `json:"users"`

	// TotalCount equals len(Users) at construction.
	TotalCount int `json:"total_count"`

	// HasMore is true iff the returned count reached the requested limit.
	// This is an approximation, not a true next-page signal: a page that
	// exactly exhausts the population still reports HasMore == true.
	HasMore bool `json:"has_more"`

	Metadata Metadata `json:"metadata"`
}

func newResult(users []user.User, limit int, meta Metadata) Result {
	return Result{
		Users:      users,
		TotalCount: len(users),
		HasMore:    len(users) >= limit,
		Metadata:   meta,
	}
}

func buildMetadata(users []user.User, filterApplied, sortApplied bool) Metadata {
	meta := Metadata{
		RetrievedAt:   time.Now().UTC(),
		TotalCount:    len(users),
		RoleCounts:    make(map[user.Role]int, 3),
		FilterApplied: filterApplied,
		SortApplied:   sortApplied,
	}
	for _, u := range users {
		if u.IsActive {
			meta.ActiveCount++
		} else {
			meta.InactiveCount++
		}
		meta.RoleCounts[u.Role]++
	}
	return meta
}
