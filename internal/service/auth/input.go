package auth

import (
	"github.com/powerline/gridstock/internal/domain"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 64
	minPasswordLen = 6
	maxPasswordLen = 128
	maxFullNameLen = 128
	maxStateLen    = 64
)

// RegisterInput holds parameters for the register operation. An empty Role
// defaults to employee; an empty FullName defaults to the username.
type RegisterInput struct {
	FullName string
	Username string
	Password string
	Role     string
	State    string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) < minUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "min 3 characters"})
	case len(i.Username) > maxUsernameLen:
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 64 characters"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 6 characters"})
	case len(i.Password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 128 characters"})
	}

	if i.Role != "" && !domain.UserRole(i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin or employee"})
	}

	switch {
	case i.State == "":
		errs = append(errs, domain.FieldError{Field: "state", Message: "required"})
	case len(i.State) > maxStateLen:
		errs = append(errs, domain.FieldError{Field: "state", Message: "max 64 characters"})
	}

	if len(i.FullName) > maxFullNameLen {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "max 128 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
