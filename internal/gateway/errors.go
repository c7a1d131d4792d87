package gateway

import "errors"

// Error taxonomy for backend calls. Callers classify with errors.Is: read-path
// failures (ErrNetwork, ErrServer on balance/catalog reads) degrade to a
// default or last-known value, write-path failures surface to the initiating
// action, and ErrSessionExpired forces the session back to unauthenticated.
var (
	// ErrInvalidCredentials is returned when login or signup is rejected
	// because the supplied credentials are wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailExists is returned when signup is rejected because the email
	// address is already registered.
	ErrEmailExists = errors.New("email already registered")

	// ErrValidation is returned when the backend rejects a request as
	// malformed, or when a local pre-check fails before any network call.
	ErrValidation = errors.New("request validation failed")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned when the backend is unreachable.
	ErrNetwork = errors.New("backend unreachable")

	// ErrServer is returned when the backend responds with a server error.
	ErrServer = errors.New("backend server error")

	// ErrSessionExpired is returned when the stored bearer credential is
	// rejected on a call made after login.
	ErrSessionExpired = errors.New("session expired")
)
