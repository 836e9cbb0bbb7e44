package services

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionNotFound means the session token is missing, expired, or
	// names a user that no longer exists.
	ErrSessionNotFound = errors.New("session not found")
	// ErrValidation is returned with the per-field issues of a rejected
	// quote request.
	ErrValidation = errors.New("validation failed")
)
