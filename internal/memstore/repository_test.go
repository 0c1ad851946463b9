package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhittincamdali/go-user-query/pkg/testsupport"
	"github.com/muhittincamdali/go-user-query/user"
)

func seeded(t *testing.T, n int) (*Repository, []user.User) {
	t.Helper()
	repo := New()
	users := testsupport.BuildUsers(n)
	repo.Seed(users...)
	return repo, users
}

func TestList_Pagination(t *testing.T) {
	repo, _ := seeded(t, 5)
	ctx := context.Background()

	first, err := repo.List(ctx, 2, 0, nil)
	require.NoError(t, err)
	second, err := repo.List(ctx, 2, 2, nil)
	require.NoError(t, err)
	tail, err := repo.List(ctx, 2, 4, nil)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Len(t, second, 2)
	assert.Len(t, tail, 1)

	seen := map[string]bool{}
	for _, page := range [][]user.User{first, second, tail} {
		for _, u := range page {
			assert.False(t, seen[u.ID], "pages must not overlap")
			seen[u.ID] = true
		}
	}
}

func TestList_DeterministicOrder(t *testing.T) {
	repo, _ := seeded(t, 10)
	ctx := context.Background()

	a, err := repo.List(ctx, 10, 0, nil)
	require.NoError(t, err)
	b, err := repo.List(ctx, 10, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, a, b, "iteration order must be stable across calls")
	for i := 1; i < len(a); i++ {
		assert.False(t, a[i].CreatedAt.After(a[i-1].CreatedAt), "newest first")
	}
}

func TestList_OffsetPastEnd(t *testing.T) {
	repo, _ := seeded(t, 3)

	users, err := repo.List(context.Background(), 10, 50, nil)

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestList_ActiveNarrowing(t *testing.T) {
	repo := New()
	repo.Seed(
		testsupport.BuildUser(func(u *user.User) { u.ID = "a"; u.IsActive = true }),
		testsupport.BuildUser(func(u *user.User) { u.ID = "b"; u.IsActive = false }),
	)

	active := true
	users, err := repo.List(context.Background(), 10, 0, &active)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a", users[0].ID)
}

func TestListActiveInactive(t *testing.T) {
	repo := New()
	repo.Seed(
		testsupport.BuildUser(func(u *user.User) { u.IsActive = true }),
		testsupport.BuildUser(func(u *user.User) { u.IsActive = true }),
		testsupport.BuildUser(func(u *user.User) { u.IsActive = false }),
	)
	ctx := context.Background()

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	inactive, err := repo.ListInactive(ctx)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)
}

func TestListByRole(t *testing.T) {
	repo := New()
	repo.Seed(
		testsupport.BuildUser(func(u *user.User) { u.Role = user.RoleAdmin }),
		testsupport.BuildUser(func(u *user.User) { u.Role = user.RoleUser }),
		testsupport.BuildUser(func(u *user.User) { u.Role = user.RoleUser }),
	)

	admins, err := repo.ListByRole(context.Background(), user.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, admins, 1)

	members, err := repo.ListByRole(context.Background(), user.RoleUser)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestFailWith(t *testing.T) {
	repo, _ := seeded(t, 2)

	repo.FailWith(user.ErrDatabase)
	_, err := repo.List(context.Background(), 10, 0, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, user.ErrDatabase))

	repo.FailWith(nil)
	_, err = repo.List(context.Background(), 10, 0, nil)
	require.NoError(t, err)
}

func TestCalls(t *testing.T) {
	repo, _ := seeded(t, 1)
	ctx := context.Background()

	require.EqualValues(t, 0, repo.Calls())
	_, _ = repo.List(ctx, 1, 0, nil)
	_, _ = repo.ListActive(ctx)
	require.EqualValues(t, 2, repo.Calls())
}

func TestList_CanceledContext(t *testing.T) {
	repo, _ := seeded(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx, 1, 0, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
