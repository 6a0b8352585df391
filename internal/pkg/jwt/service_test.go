package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := testService()
	userID := uuid.New()

	token, err := s.GenerateAccessToken(userID, "ada@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := s.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != userID || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("token type = %s", claims.TokenType)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	s := testService()
	userID := uuid.New()

	token, err := s.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := s.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if claims.UserID != userID || claims.TokenType != TokenTypeRefresh {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	s := testService()
	userID := uuid.New()

	access, _ := s.GenerateAccessToken(userID, "ada@example.com")
	refresh, _ := s.GenerateRefreshToken(userID)

	if _, err := s.ValidateAccessToken(refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh token accepted as access: err = %v", err)
	}
	if _, err := s.ValidateRefreshToken(access); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access token accepted as refresh: err = %v", err)
	}
}

func TestExpiredToken(t *testing.T) {
	s := testService()
	token, err := s.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	// Move the clock past the access expiry.
	s.now = func() time.Time { return time.Now().Add(16 * time.Minute) }
	if _, err := s.ValidateAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestTamperedAndForeignTokens(t *testing.T) {
	s := testService()
	token, _ := s.GenerateAccessToken(uuid.New(), "")

	if _, err := s.ValidateAccessToken(token + "x"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("tampered token: err = %v", err)
	}
	if _, err := s.ValidateAccessToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("garbage token: err = %v", err)
	}

	other := NewHMACService("other-secret", "other-refresh", 15*time.Minute, time.Hour)
	foreign, _ := other.GenerateAccessToken(uuid.New(), "")
	if _, err := s.ValidateAccessToken(foreign); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("foreign-secret token: err = %v", err)
	}
}
