package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@example.com",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenEmpty(t *testing.T) {
	s := New("", zap.NewNop())
	if s.Authenticated() {
		t.Fatal("empty session reported authenticated")
	}
	token, err := s.Token()
	if err != nil || token != "" {
		t.Fatalf("Token() = %q, %v", token, err)
	}
}

func TestTokenValidJWT(t *testing.T) {
	raw := signedToken(t, time.Now().Add(time.Hour))
	s := New(raw, zap.NewNop())

	token, err := s.Token()
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if token != raw {
		t.Fatal("valid JWT must pass through unchanged")
	}
}

func TestTokenExpiredJWT(t *testing.T) {
	s := New(signedToken(t, time.Now().Add(-time.Minute)), zap.NewNop())

	_, err := s.Token()
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
}

func TestTokenOpaquePassthrough(t *testing.T) {
	s := New("not-a-jwt-token", zap.NewNop())

	token, err := s.Token()
	if err != nil || token != "not-a-jwt-token" {
		t.Fatalf("Token() = %q, %v", token, err)
	}
}
