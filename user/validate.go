package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validator checks the integrity of user records coming back from storage.
type Validator interface {
	ValidateUser(u User) error
}

// RecordValidator is the default Validator. It enforces the structural rules
// every stored user must satisfy regardless of which backend produced it.
type RecordValidator struct{}

// NewRecordValidator returns the default record validator.
func NewRecordValidator() RecordValidator {
	return RecordValidator{}
}

// ValidateUser returns a non-nil error when the record is malformed.
func (RecordValidator) ValidateUser(u User) error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&u.Email, validation.Required, is.Email),
		validation.Field(&u.Role, validation.By(validRole)),
	)
}

func validRole(value any) error {
	r, _ := value.(Role)
	if !r.Valid() {
		return validation.NewError("validation_role", "must be admin, moderator or user")
	}
	return nil
}
