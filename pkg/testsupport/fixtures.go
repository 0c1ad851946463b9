// Package testsupport provides fixture loading and user builders shared by
// the test suites.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/muhittincamdali/go-user-query/user"
)

// LoadFixture loads raw test data from a fixture file. The path is relative
// to the test package directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
func LoadFixtureJSON(t *testing.T, path string, dest any) {
	t.Helper()

	if err := json.Unmarshal(LoadFixture(t, path), dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// FixturePath constructs a path to a fixture file relative to the testdata
// directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// fixtureEpoch anchors generated timestamps so tests that sort by recency
// stay deterministic.
var fixtureEpoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// BuildUser returns a valid user with generated identity fields, modified by
// the given functions. The n-th call in a process does not matter: callers
// that care about timestamps should set them explicitly via a modifier.
func BuildUser(mods ...func(*user.User)) user.User {
	id := uuid.NewString()
	u := user.User{
		ID:        id,
		Name:      "User " + id[:8],
		Email:     id[:8] + "@example.com",
		Role:      user.RoleUser,
		IsActive:  true,
		CreatedAt: fixtureEpoch,
		UpdatedAt: fixtureEpoch,
	}
	for _, mod := range mods {
		mod(&u)
	}
	return u
}

// BuildUsers returns n valid users with strictly decreasing CreatedAt, so
// the fixture set has an unambiguous recency order.
func BuildUsers(n int) []user.User {
	out := make([]user.User, 0, n)
	for i := 0; i < n; i++ {
		offset := time.Duration(i) * time.Hour
		out = append(out, BuildUser(func(u *user.User) {
			u.CreatedAt = fixtureEpoch.Add(-offset)
			u.UpdatedAt = fixtureEpoch.Add(-offset)
		}))
	}
	return out
}
