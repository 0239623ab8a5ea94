package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrAuthorInUse = errors.New("cannot delete author: author is being used in blog posts")
	// ErrUnavailable is returned when a remote-only store or client was not configured.
	ErrUnavailable = errors.New("service unavailable")
)

// ValidationError rejects input before any backend is called.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
