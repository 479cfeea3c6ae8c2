// Package common defines shared sentinel errors and small helpers used across
// the MedMate client packages. Callers should use errors.Is to match these
// values.
package common

import "errors"

// Repository-level errors.
var (
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
)
