// Package apperr defines the error taxonomy shared by the services and the
// HTTP boundary. Services return these; the boundary maps them onto status
// codes and the error envelope.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound covers both truly absent resources and resources owned by
	// another user. The two cases must stay indistinguishable to the caller.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated means the request carried no valid session token.
	ErrUnauthenticated = errors.New("unauthorized")

	// ErrInvalidCredentials is returned on login failure without revealing
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports one or more problems with request input, including
// uniqueness conflicts surfaced by the storage layer.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Validation builds a ValidationError from one or more messages.
func Validation(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NotFound wraps ErrNotFound with the resource name, e.g. "contact not found".
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}
