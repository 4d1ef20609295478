// Package common defines shared constants and sentinel errors used across
// the usergate client components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Login errors (bad credentials or transport failure during login).
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Directory errors.
	ErrLoadFailed    = errors.New("load failed")
	ErrNotFound      = errors.New("not found")
	ErrUpdateFailed  = errors.New("update failed")
	ErrDeleteIgnored = errors.New("delete ignored")

	// Edit form values rejected before any request is sent.
	ErrInvalidInput = errors.New("invalid input")

	// Durable storage is unreachable; callers treat it as unauthenticated.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Remote API is unreachable or timed out.
	ErrUnavailable = errors.New("server unavailable")
)
