package auth

import "errors"

// Error taxonomy for the auth core. Middleware and handlers map these
// onto HTTP statuses; nothing below that boundary knows about HTTP.
var (
	ErrTokenInvalid     = errors.New("auth: invalid token")
	ErrTokenExpired     = errors.New("auth: token expired")
	ErrUserNotFound     = errors.New("auth: user not found")
	ErrStoreUnavailable = errors.New("auth: store unavailable")
)
