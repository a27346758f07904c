package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie the browser client stores the session
// token under. Its attributes (HttpOnly, SameSite=Lax, Path=/) are part of
// the contract with the frontend.
const SessionCookieName = "sessionId"

// Claims is the session token payload. There is no user identity: the
// ledger has a single implicit user, so the only claim of substance is that
// the password check succeeded before issuance.
type Claims struct {
	Authenticated bool `json:"authenticated"`
	jwt.RegisteredClaims
}

// Session describes an issued session token together with its lifetime,
// which the handler needs for the cookie max-age.
type Session struct {
	Token     string
	ExpiresAt time.Time
	MaxAge    time.Duration
}

// TokenGenerator issues and validates session tokens.
type TokenGenerator interface {
	GenerateSessionToken() (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*Claims, error)
}
