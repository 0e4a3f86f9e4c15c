package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/middleware"
)

// UserController handles admin-level user management endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers lists every registered user
// @Summary List users
// @Description Get all registered users (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Users retrieved successfully"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.NewUserResponse(user))
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(responses, "Users retrieved successfully"))
}

// DeleteUser removes a user account
// @Summary Delete user
// @Description Delete a user and all dependent rows (admin only). Deleting your own account is rejected.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "User deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Cannot delete own account"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	actorID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), actorID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "User deleted"}, "User deleted successfully"))
}
