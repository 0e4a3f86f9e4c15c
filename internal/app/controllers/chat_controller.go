package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/middleware"
)

// ChatController handles chatbot endpoints
type ChatController struct {
	chatService *services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage runs one chat turn
// @Summary Send a chat message
// @Description Send a message to the assistant and receive its reply. The turn is stored in the transcript.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.APIResponse{data=dto.ChatResponse} "Chat turn completed"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 503 {object} dto.ErrorResponse "Assistant unavailable"
// @Router /chat [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	conv, err := c.chatService.HandleTurn(ctx.Request.Context(), userID, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ChatResponse{
		ID:        conv.ID,
		Message:   conv.Message,
		Response:  conv.Response,
		Timestamp: conv.CreatedAt,
	}, "Chat turn completed"))
}

// GetHistory returns the caller's transcript
// @Summary Get chat history
// @Description Get the authenticated user's full chat transcript, oldest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Conversation} "History retrieved successfully"
// @Router /chat/history [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	history, err := c.chatService.GetHistory(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history, "History retrieved successfully"))
}

// GetSystemPrompt returns the chatbot base instruction
// @Summary Get chatbot prompt
// @Description Get the chatbot's base instruction (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PromptResponse} "Prompt retrieved successfully"
// @Router /admin/prompt [get]
func (c *ChatController) GetSystemPrompt(ctx *gin.Context) {
	resp, err := c.chatService.GetSystemPrompt(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Prompt retrieved successfully"))
}

// UpdateSystemPrompt replaces the chatbot base instruction
// @Summary Update chatbot prompt
// @Description Replace the chatbot's base instruction (admin only)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PromptRequest true "New prompt"
// @Success 200 {object} dto.APIResponse{data=dto.PromptResponse} "Prompt updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /admin/prompt [put]
func (c *ChatController) UpdateSystemPrompt(ctx *gin.Context) {
	var req dto.PromptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.chatService.UpdateSystemPrompt(ctx.Request.Context(), req.Prompt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Prompt updated successfully"))
}
