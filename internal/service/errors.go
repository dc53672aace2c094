package service

import (
	"errors"
	"fmt"

	"github.com/Dan9191/fitbyte/internal/repository"
)

// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a client input problem. Its message is safe to return.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError names the resource that was missing or not owned by the caller.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Unwrap lets callers match repository.ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return repository.ErrNotFound
}

// notFound tags a repository miss with the resource name.
func notFound(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}
