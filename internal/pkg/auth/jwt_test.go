package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/ecetin/collegehub/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "collegehub-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "jane@college.edu",
		RoleType: models.RoleStudent,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	token, expiresIn, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if expiresIn != 1800 {
		t.Fatalf("expiresIn = %d, want 1800", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "jane@college.edu" || claims.RoleType != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestService(-1 * time.Minute)

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "collegehub-test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret should be rejected")
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Fatal("tampered token should be rejected")
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	for _, tok := range []string{"", "not-a-jwt", "a.b"} {
		if _, err := svc.ValidateAndExtractClaims(tok); err == nil {
			t.Fatalf("token %q should be rejected", tok)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatal("empty header should fail")
	}

	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Fatalf("got (%q, %v)", tok, err)
	}

	tok, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Fatalf("raw token should pass through, got (%q, %v)", tok, err)
	}
}
