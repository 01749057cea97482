package service

import (
	"errors"

	"shop-api/internal/validation"
)

var (
	// ErrNotFound is returned when a referenced id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// emptyUpdateError is the validation failure for a partial update with no
// fields at all.
func emptyUpdateError() error {
	errs := validation.NewErrors()
	errs.Add(validation.NonFieldErrors, validation.MsgEmptyUpdate)
	return errs
}
