// Package common defines shared constants and sentinel errors used across
// client and server layers of LaunchKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Provider-level errors. These are the only kinds that reach callers.
	ErrorInvalidCredentials   = errors.New("invalid credentials")
	ErrorInvalidSession       = errors.New("invalid session")
	ErrorAuthenticationFailed = errors.New("authentication failed")

	// Startup errors.
	ErrorConfiguration = errors.New("configuration error")

	// Request errors.
	ErrorTooManyNames = errors.New("too many names")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Token errors (malformed or tampered sealed tokens).
	ErrInvalidToken = errors.New("invalid token")
)
