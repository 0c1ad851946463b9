package user

import (
	"testing"
	"time"
)

func validUser() User {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	return User{
		ID:        "u-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRecordValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*User)
		wantErr bool
	}{
		{name: "valid record", mutate: func(*User) {}},
		{name: "missing id", mutate: func(u *User) { u.ID = "" }, wantErr: true},
		{name: "missing name", mutate: func(u *User) { u.Name = "" }, wantErr: true},
		{name: "missing email", mutate: func(u *User) { u.Email = "" }, wantErr: true},
		{name: "malformed email", mutate: func(u *User) { u.Email = "not-an-email" }, wantErr: true},
		{name: "unknown role", mutate: func(u *User) { u.Role = Role("superuser") }, wantErr: true},
		{name: "empty role", mutate: func(u *User) { u.Role = "" }, wantErr: true},
		{name: "inactive is fine", mutate: func(u *User) { u.IsActive = false }},
	}

	v := NewRecordValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := validUser()
			tc.mutate(&u)
			err := v.ValidateUser(u)
			if tc.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestRole_Rank(t *testing.T) {
	if !(RoleAdmin.Rank() < RoleModerator.Rank() && RoleModerator.Rank() < RoleUser.Rank()) {
		t.Fatal("role ranks must order admin < moderator < user")
	}
	if Role("ghost").Rank() <= RoleUser.Rank() {
		t.Fatal("unknown roles must rank after known ones")
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleModerator, RoleUser} {
		if !r.Valid() {
			t.Errorf("expected %q to be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Error("unexpectedly valid role")
	}
	if Role("").Valid() {
		t.Error("zero value must not be valid")
	}
}
