package dto

import "github.com/ecetin/collegehub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"1800"`
}

// RegisterRequest represents a user registration request. Only the
// student and staff roles can be self-registered; admin accounts are
// provisioned out of band.
type RegisterRequest struct {
	Name        string          `json:"name" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=8"`
	RoleType    models.RoleType `json:"role" binding:"required"`
	YearOfStudy *int            `json:"yearOfStudy,omitempty"`
}

// UserResponse represents user information without the password hash
type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	YearOfStudy *int   `json:"yearOfStudy,omitempty"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewUserResponse maps a user model into its API shape
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.RoleType),
		YearOfStudy: user.YearOfStudy,
	}
}
