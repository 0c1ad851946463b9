package userquery

import (
	"sort"
	"strings"

	"github.com/muhittincamdali/go-user-query/user"
)

// narrow applies the boolean post-fetch filters. It always returns a fresh
// slice so the caller can reorder it without touching the fetched one.
func narrow(users []user.User, activeOnly, adminsOnly bool) []user.User {
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		if activeOnly && !u.IsActive {
			continue
		}
		if adminsOnly && u.Role != user.RoleAdmin {
			continue
		}
		out = append(out, u)
	}
	return out
}

// knownSortKey reports whether by names one of the supported sort orders.
func knownSortKey(by SortBy) bool {
	switch by {
	case SortByName, SortByEmail, SortByRole, SortByCreatedAt, SortByUpdatedAt:
		return true
	}
	return false
}

// sortUsers orders users in place by the requested key. The sort is stable,
// so records that compare equal keep their fetched order. Name and email
// compare case-insensitively ascending, roles ascend by priority rank, and
// timestamps sort most recent first.
func sortUsers(users []user.User, by SortBy) {
	switch by {
	case SortByName:
		sort.SliceStable(users, func(i, j int) bool {
			return strings.ToLower(users[i].Name) < strings.ToLower(users[j].Name)
		})
	case SortByEmail:
		sort.SliceStable(users, func(i, j int) bool {
			return strings.ToLower(users[i].Email) < strings.ToLower(users[j].Email)
		})
	case SortByRole:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].Role.Rank() < users[j].Role.Rank()
		})
	case SortByCreatedAt:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		})
	case SortByUpdatedAt:
		sort.SliceStable(users, func(i, j int) bool {
			return users[i].UpdatedAt.After(users[j].UpdatedAt)
		})
	}
}
