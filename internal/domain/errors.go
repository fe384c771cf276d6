package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.
// Validation errors all wrap ErrValidation so callers can treat any of them
// as a silent no-op.

// ErrValidation is the common ancestor of every rejected-input error.
var ErrValidation = errors.New("validation failed")

var (
	// Brand errors
	ErrNameRequired   = validationError("brand name is required")
	ErrHandleRequired = validationError("brand handle is required")
	ErrBrandNotFound  = errors.New("brand not found")
	ErrLastBrand      = errors.New("cannot delete the last remaining brand")

	// Content errors
	ErrTitleRequired      = validationError("content title is required")
	ErrDateRequired       = validationError("content date is required")
	ErrInvalidContentType = validationError("unknown content type")
	ErrInvalidPlatform    = validationError("unknown platform")
	ErrContentNotFound    = errors.New("content item not found")

	// Finance errors
	ErrAmountRequired      = validationError("amount must be greater than zero")
	ErrDescriptionRequired = validationError("description is required")
	ErrInvalidFinanceType  = validationError("unknown finance type")
	ErrFinanceNotFound     = errors.New("finance entry not found")

	// Confirmation gate
	ErrNotConfirmed = errors.New("operation not confirmed")

	// Persistence
	ErrNoSnapshot = errors.New("no usable state snapshot")
)

func validationError(msg string) error {
	return &fieldError{msg: msg}
}

type fieldError struct{ msg string }

func (e *fieldError) Error() string { return e.msg }

// Unwrap ties every field error to ErrValidation for errors.Is checks.
func (e *fieldError) Unwrap() error { return ErrValidation }
