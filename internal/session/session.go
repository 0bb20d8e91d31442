// Package session holds the bearer token for the current user. Token
// issuance and verification are backend concerns; the client only keeps
// the token around and fails fast when a JWT is visibly expired.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrSessionExpired = errors.New("session expired, please log in again")

// Session wraps an access token obtained out of band (config or env).
type Session struct {
	token  string
	logger *zap.Logger
}

func New(token string, logger *zap.Logger) *Session {
	return &Session{token: token, logger: logger}
}

// Authenticated reports whether a token is configured at all.
func (s *Session) Authenticated() bool {
	return s != nil && s.token != ""
}

// Token returns the bearer token to attach to a request. When the token
// is a JWT with an expiry in the past, ErrSessionExpired is returned
// instead of letting the backend bounce the call. Opaque tokens are
// passed through untouched; only the backend can judge them.
func (s *Session) Token() (string, error) {
	if s == nil || s.token == "" {
		return "", nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		// Not a JWT; send it as-is.
		return s.token, nil
	}

	exp, err := claims.GetExpirationTime()
	if err == nil && exp != nil && exp.Before(time.Now()) {
		s.logger.Warn("Access token expired", zap.Time("expired_at", exp.Time))
		return "", ErrSessionExpired
	}
	return s.token, nil
}
