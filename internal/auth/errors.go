package auth

import "errors"

var (
	// ErrMissingToken is returned when no bearer token is present on the request
	ErrMissingToken = errors.New("authentication token required")

	// ErrInvalidToken is returned when the identity provider rejects the token
	ErrInvalidToken = errors.New("invalid authentication token")
)
