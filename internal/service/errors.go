package service

import (
	"errors"
	"fmt"

	"go-inventory-billing/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrCompanyExists      = errors.New("company name already exists")

	// ErrInsufficientStock covers both an unknown product reference and a
	// product without enough stock; an order request cannot tell the two
	// apart, deliberately.
	ErrInsufficientStock = errors.New("not enough stock or product not found")

	ErrNoHistory = errors.New("no sales history found for this product")
)

// validationError turns the first validator failure into a caller-facing error
func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}
