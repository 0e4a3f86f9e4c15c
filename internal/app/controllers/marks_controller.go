package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/middleware"
)

// MarksController handles internal marks endpoints
type MarksController struct {
	marksService *services.MarksService
}

// NewMarksController creates a new MarksController
func NewMarksController(marksService *services.MarksService) *MarksController {
	return &MarksController{
		marksService: marksService,
	}
}

// SaveMarks records or replaces a student's internal marks for a course
// @Summary Save internal marks
// @Description Upsert the three internal sub-scores for a (student, course) pair (staff/admin only)
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveMarksRequest true "Marks details"
// @Success 200 {object} dto.APIResponse{data=dto.MarksResponse} "Marks saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Score out of range"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /marks/internal [post]
func (c *MarksController) SaveMarks(ctx *gin.Context) {
	var req dto.SaveMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.marksService.SaveMarks(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Marks saved successfully"))
}

// GetMyMarks returns the authenticated student's marks
// @Summary Get my marks
// @Description Get the authenticated student's marks with totals and pass/fail status
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MarksResponse} "Marks retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /marks/student [get]
func (c *MarksController) GetMyMarks(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	marks, err := c.marksService.GetStudentMarks(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(marks, "Marks retrieved successfully"))
}

// GetStudentMarks returns any student's marks (staff/admin)
// @Summary Get a student's marks
// @Description Get a student's marks with totals and pass/fail status (staff/admin only)
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=[]dto.MarksResponse} "Marks retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /marks/student/{id} [get]
func (c *MarksController) GetStudentMarks(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	marks, err := c.marksService.GetStudentMarks(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(marks, "Marks retrieved successfully"))
}
