package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/middleware"
)

// EnrollmentController handles enrollment endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll registers a student in a course
// @Summary Enroll a student
// @Description Register a student in a course (staff/admin only). Duplicate enrollment is a conflict.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollmentRequest true "Enrollment details"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment} "Student enrolled successfully"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Student already enrolled"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment, "Student enrolled successfully"))
}

// GetStudentEnrollments lists a student's enrollments
// @Summary List a student's enrollments
// @Description Get all enrollments for the given student with course names
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /enrollments/student/{id} [get]
func (c *EnrollmentController) GetStudentEnrollments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.GetStudentEnrollments(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments, "Enrollments retrieved successfully"))
}

// Unenroll removes an enrollment
// @Summary Remove an enrollment
// @Description Delete an enrollment by its id (staff/admin only)
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Enrollment removed successfully"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enrollmentService.Unenroll(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Enrollment removed"}, "Enrollment removed successfully"))
}
