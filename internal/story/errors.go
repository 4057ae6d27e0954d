package story

import (
	"errors"
	"fmt"
)

// ValidationError reports a locally-recoverable input problem (missing
// required field, empty story at share time). The triggering operation is a
// no-op.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error (including wrapped errors)
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// NotFoundError reports a missing resource (unknown or revoked share).
type NotFoundError struct {
	Resource string
	Message  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("not found %s: %s", e.Resource, e.Message)
}

func NewNotFoundError(resource, message string) NotFoundError {
	return NotFoundError{Resource: resource, Message: message}
}

func IsNotFoundError(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// AuthorizationError reports access without a qualifying identity (share
// without a signed-in owner, admin surface without allow-listed email).
type AuthorizationError struct {
	Message string
}

func (e AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized: %s", e.Message)
}

func NewAuthorizationError(message string) AuthorizationError {
	return AuthorizationError{Message: message}
}

func IsAuthorizationError(err error) bool {
	var ae AuthorizationError
	return errors.As(err, &ae)
}

// ExternalServiceError wraps a failed call across the system boundary
// (generation service, record store). Callers must leave prior state intact
// and surface the failure; nothing is retried automatically.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e ExternalServiceError) Unwrap() error { return e.Err }

func NewExternalServiceError(service string, err error) ExternalServiceError {
	return ExternalServiceError{Service: service, Err: err}
}

func IsExternalServiceError(err error) bool {
	var ee ExternalServiceError
	return errors.As(err, &ee)
}
