package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/middleware"
)

// AuthController handles registration, login and the current-user profile
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register creates a new student or staff account
// @Summary Register a new user
// @Description Create a student or staff account. Admin accounts cannot be self-registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewUserResponse(user), "User registered successfully"))
}

// Login verifies credentials and returns an access token
// @Summary Log in
// @Description Authenticate with email and password and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Login successful"))
}

// GetCurrentUser returns the authenticated user's profile
// @Summary Get current user
// @Description Return the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	user, err := c.authService.GetCurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(user), "User retrieved successfully"))
}
