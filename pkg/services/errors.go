package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoWork is returned by ClaimNextTask when no pending task is eligible
	ErrNoWork = errors.New("no pending tasks")

	// ErrLeaseLost is returned when a lease operation finds a different owner
	ErrLeaseLost = errors.New("task lease lost")

	// ErrSubredditNotFound is returned when the subreddit does not exist upstream
	ErrSubredditNotFound = errors.New("subreddit not found")

	// ErrPostNotFound is returned when the post does not exist or was removed
	ErrPostNotFound = errors.New("post not found")

	// ErrPostNotEligible is returned when the post exists but policy rejects it
	ErrPostNotEligible = errors.New("post not eligible")

	// ErrUpstreamUnavailable is returned when a required external API fails
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
