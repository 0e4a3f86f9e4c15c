package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/auth"
)

// AuthService handles registration, login and the current-user lookup
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrValidationFailed)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrValidationFailed)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrValidationFailed)
	}

	return nil
}

// Register creates a new account. Only the student and staff roles can be
// self-registered; admin accounts are provisioned by seeding or by an
// existing admin, never through this endpoint.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if req.RoleType != models.RoleStudent && req.RoleType != models.RoleStaff {
		return nil, fmt.Errorf("%w: role must be student or staff", apperrors.ErrValidationFailed)
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Password:    hashedPassword,
		RoleType:    req.RoleType,
		YearOfStudy: req.YearOfStudy,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userId", id).Str("role", string(user.RoleType)).Msg("User registered")
	return user, nil
}

// Login verifies credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email exists
		s.logger.Debug().Str("email", email).Msg("Login attempt for unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Debug().Int64("userId", user.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")
	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}

// GetCurrentUser returns the authenticated user's profile
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
