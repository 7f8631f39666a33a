// Package common defines shared sentinel errors used across the landing
// service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. Their text is surfaced verbatim in JSON error
	// responses, so keep the wording stable.
	ErrInvalidEmail      = errors.New("invalid email")
	ErrFirstNameRequired = errors.New("first name required")
	ErrMissingKey        = errors.New("missing key")

	// Bot verification failed, was rejected remotely, or no token was sent.
	ErrVerificationFailed = errors.New("turnstile verification failed")
)
