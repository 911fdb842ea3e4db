package errors

import (
	"errors"
	"fmt"
)

// Common error types for the admin front-end core
var (
	// Authentication errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")

	// Transport errors
	ErrNetwork = errors.New("network failure")

	// Persistence errors (best-effort everywhere; callers log and continue)
	ErrStorage = errors.New("storage failure")

	// Capability errors
	ErrConfigMissing = errors.New("required capability missing")

	// General errors
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
