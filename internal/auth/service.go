package auth

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frahmantamala/vehicle-ledger/internal"
)

// Service is the password gate and session issuer/validator. Both secrets
// are injected at construction and immutable for the process lifetime.
type Service struct {
	appPassword    string
	tokenGenerator TokenGenerator
	sessionTTL     time.Duration
	logger         *slog.Logger
}

func NewService(cfg internal.SecurityConfig, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		appPassword:    cfg.AppPassword,
		tokenGenerator: tokenGen,
		sessionTTL:     cfg.SessionDurationValue(),
		logger:         logger,
	}
}

// VerifyPassword checks the candidate against the configured shared secret.
// A missing configured secret is a configuration error, not an
// authentication failure: callers must be able to answer 500, not 401.
// Comparison is exact string equality; the plaintext scheme is the
// documented contract of this service.
func (s *Service) VerifyPassword(candidate string) (bool, error) {
	if s.appPassword == "" {
		s.logger.Error("app password is not configured")
		return false, internal.NewConfigurationError("app password is not configured")
	}
	return candidate == s.appPassword, nil
}

// Authenticate runs the full login flow: password check then session
// issuance. Configuration errors pass through untouched so the transport
// layer maps them to a 5xx.
func (s *Service) Authenticate(dto LoginDTO) (*Session, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.VerifyPassword(dto.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Warn("login rejected: wrong password")
		return nil, internal.ErrInvalidPassword
	}

	return s.CreateSession()
}

// CreateSession issues a signed session token. Stateless: nothing is stored
// server-side, so there is no revocation before natural expiry.
func (s *Service) CreateSession() (*Session, error) {
	token, expiresAt, err := s.tokenGenerator.GenerateSessionToken()
	if err != nil {
		s.logger.Error("failed to sign session token", "error", err)
		return nil, internal.NewInternalError("failed to create session", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		MaxAge:    s.sessionTTL,
	}, nil
}

// ValidateSession reports whether the token is genuine, unexpired and
// carries the authenticated claim. Every failure mode normalizes to false;
// this never returns an error to the caller.
func (s *Service) ValidateSession(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	claims, err := s.tokenGenerator.ValidateSessionToken(tokenString)
	if err != nil {
		s.logger.Debug("session validation failed", "error", err)
		return false
	}

	return claims.Authenticated
}

// JWTTokenGenerator signs HS256 session tokens with a shared secret.
type JWTTokenGenerator struct {
	SessionSecret []byte
	SessionTTL    time.Duration
}

func NewJWTTokenGenerator(cfg internal.SecurityConfig) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		SessionSecret: []byte(cfg.SessionSecret),
		SessionTTL:    cfg.SessionDurationValue(),
	}
}

func (j *JWTTokenGenerator) GenerateSessionToken() (string, time.Time, error) {
	if len(j.SessionSecret) == 0 {
		return "", time.Time{}, fmt.Errorf("session secret is not configured")
	}

	now := time.Now()
	expiresAt := now.Add(j.SessionTTL)

	claims := &Claims{
		Authenticated: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.SessionSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (j *JWTTokenGenerator) ValidateSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.SessionSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
