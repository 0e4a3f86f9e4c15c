package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "roleType"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the bearer token and stores the caller's identity in
// the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.RoleType)

		c.Next()
	}
}

// RequireRoles allows the request through only when the caller currently
// holds one of the given roles. The role is re-read from the database on
// every request rather than trusted from the token, so a role change or a
// deleted account takes effect within the token's lifetime.
func (m *AuthMiddleware) RequireRoles(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User information not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		userIDInt, ok := userID.(int64)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			errorDetail = errorDetail.WithDetails("Invalid user ID format")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		user, err := m.userRepo.GetUserByID(c.Request.Context(), userIDInt)
		if err != nil {
			// A valid token for a since-deleted account is unauthorized,
			// not a lookup failure.
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication failed")
			errorDetail = errorDetail.WithDetails("Account no longer exists")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		for _, role := range roles {
			if user.RoleType == role {
				// Refresh the context role in case it changed since the
				// token was issued.
				c.Set(ContextRole, string(user.RoleType))
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// GetUserID reads the authenticated user's id from the gin context
func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
