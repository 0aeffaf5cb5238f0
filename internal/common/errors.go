package common

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrTimeout              = errors.New("operation timed out")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrNoSeeds is returned when neither inspection nor seed files yield a resource to fetch.
	ErrNoSeeds = errors.New("no seed resources available")
)

// WrapError prefixes err with message as "message: err". A nil err still
// produces an error so a missing cause shows up in logs.
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf is WrapError with a formatted message.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return WrapError(err, fmt.Sprintf(format, args...))
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
