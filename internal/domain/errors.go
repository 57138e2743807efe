package domain

import "errors"

var (
	// ErrConflict is returned when a grant already exists for a (recipient, award) pair
	ErrConflict = errors.New("grant already exists")

	// ErrNotFound is returned when a grant, award or user does not exist
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when the store or cache cannot be reached in time.
	// Callers may retry with backoff.
	ErrUnavailable = errors.New("service unavailable")

	// ErrNotification is returned when an award notification could not be delivered
	ErrNotification = errors.New("notification failed")

	// ErrInvalidArgument is returned when an input value is out of range
	ErrInvalidArgument = errors.New("invalid argument")
)

// IsNotFound reports whether err is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
