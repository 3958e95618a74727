package auth

import "errors"

// Verification and gating failures. Callers normalize all token/session
// failures to a single unauthenticated outcome; only ErrForbidden is
// reported distinctly.
var (
	ErrNoToken          = errors.New("no token provided")
	ErrTokenInvalid     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrAudienceMismatch = errors.New("token audience mismatch")
	ErrSessionRevoked   = errors.New("session revoked")
	ErrForbidden        = errors.New("insufficient role")
)
