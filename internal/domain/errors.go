package domain

import "errors"

var (
	// ErrMissingCredentials is returned when no client secret is configured
	ErrMissingCredentials = errors.New("kroger client secret is not configured")

	// ErrAuthFailed is returned when the token endpoint rejects the credentials
	ErrAuthFailed = errors.New("kroger authorization failed")

	// ErrCatalogAPIFailure is returned when a catalog API request fails
	ErrCatalogAPIFailure = errors.New("kroger API request failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
