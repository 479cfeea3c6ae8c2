package models

import "github.com/medmate/medmate/internal/optional"

// SignupData is the registration form. Tags are checked with
// go-playground/validator.
type SignupData struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
	Role     Role   `validate:"required,oneof=donor ngo"`
	Phone    optional.Value[string]
	Address  optional.Value[string]
}
