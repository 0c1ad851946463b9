package user

import "time"

// Role classifies a user account. The zero value is not a valid role.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Rank returns the priority rank of the role. Lower ranks sort first:
// admin (1) < moderator (2) < user (3).
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleModerator:
		return 2
	case RoleUser:
		return 3
	default:
		return 4
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User is an identity plus profile record. Values are treated as immutable
// once constructed: the query pipeline references users, it never mutates
// them. The repository owns the records.
type User struct {
	ID        string    `json:"id" msgpack:"id"`
	Name      string    `json:"name" msgpack:"name"`
	Email     string    `json:"email" msgpack:"email"`
	Role      Role      `json:"role" msgpack:"role"`
	IsActive  bool      `json:"is_active" msgpack:"is_active"`
	CreatedAt time.Time `json:"created_at" msgpack:"created_at"`
	UpdatedAt time.Time `json:"updated_at" msgpack:"updated_at"`
}
