package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/auth"
)

func newAuthFixture(users ...*models.User) (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo(users...)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key-for-auth-service",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "collegehub.test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop()), userRepo
}

func TestRegisterRoleRestriction(t *testing.T) {
	tests := []struct {
		name    string
		role    models.RoleType
		wantErr bool
	}{
		{"student allowed", models.RoleStudent, false},
		{"staff allowed", models.RoleStaff, false},
		{"admin rejected", models.RoleAdmin, true},
		{"unknown role rejected", models.RoleType("superuser"), true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthFixture()
			_, err := svc.Register(context.Background(), &dto.RegisterRequest{
				Name:     "Test User",
				Email:    "user" + string(rune('a'+i)) + "@college.edu",
				Password: "password1",
				RoleType: tt.role,
			})
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Errorf("expected validation error, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(&models.User{
		ID: 1, Email: "taken@college.edu", RoleType: models.RoleStudent,
	})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Other",
		Email:    "Taken@College.edu", // normalized to lowercase before the check
		Password: "password1",
		RoleType: models.RoleStudent,
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "abc1"},
		{"no digit", "passwords"},
		{"no letter", "12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthFixture()
			_, err := svc.Register(context.Background(), &dto.RegisterRequest{
				Name:     "Test User",
				Email:    "weak@college.edu",
				Password: tt.password,
				RoleType: models.RoleStudent,
			})
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation error for %q, got %v", tt.password, err)
			}
		})
	}
}

func TestLoginRoundTrip(t *testing.T) {
	hashed, err := auth.HashPassword("password1")
	if err != nil {
		t.Fatal(err)
	}
	svc, _ := newAuthFixture(&models.User{
		ID: 1, Name: "Sam", Email: "sam@college.edu",
		Password: hashed, RoleType: models.RoleStudent,
	})

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "sam@college.edu", Password: "password1",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token.AccessToken == "" {
		t.Error("expected a non-empty access token")
	}
	if resp.Token.ExpiresIn != 1800 {
		t.Errorf("expected 1800s expiry, got %d", resp.Token.ExpiresIn)
	}
	if resp.User.Role != "student" {
		t.Errorf("unexpected role in response: %q", resp.User.Role)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	hashed, _ := auth.HashPassword("password1")
	svc, _ := newAuthFixture(&models.User{
		ID: 1, Email: "sam@college.edu", Password: hashed, RoleType: models.RoleStudent,
	})

	// Wrong password and unknown email both yield the same error
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "sam@college.edu", Password: "wrong-pass1",
	}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@college.edu", Password: "password1",
	}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
