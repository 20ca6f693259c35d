package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid operator code or pin")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
