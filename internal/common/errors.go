// Package common defines shared constants and sentinel errors used across
// the eldercare server and client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Input errors.
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

var authErrors = []error{
	ErrUnauthorized,
	ErrInvalidToken,
	ErrTokenExpired,
	ErrUserNotFound,
	ErrWrongPassword,
}

// IsAuthError reports whether err belongs to the authentication family:
// bad credentials or a missing, invalid or expired token.
func IsAuthError(err error) bool {
	for _, target := range authErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
