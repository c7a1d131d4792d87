// Package auth provides JWT token management and password hashing for the
// reference backend.
package auth

import "errors"

// Token validation errors.
var (
	// ErrInvalidToken is returned when a token is malformed or its signature
	// does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's not-before claim is in
	// the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")
)
