package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/middleware"
)

// ReportController handles staff-facing report endpoints
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetGradeDistribution returns pass/fail counts per course
// @Summary Grade distribution report
// @Description Get pass/fail counts for every course, including courses with no recorded marks (staff/admin only)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseDistribution} "Distribution retrieved successfully"
// @Router /reports/grade-distribution [get]
func (c *ReportController) GetGradeDistribution(ctx *gin.Context) {
	dist, err := c.reportService.GetGradeDistribution(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dist, "Distribution retrieved successfully"))
}

// GetStudentSummary returns an AI-generated narrative summary
// @Summary Student summary report
// @Description Generate a narrative summary of a student's enrollments, marks and recent chat activity (staff/admin only)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=dto.StudentSummaryResponse} "Summary generated successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 503 {object} dto.ErrorResponse "Assistant unavailable"
// @Router /reports/student-summary/{id} [get]
func (c *ReportController) GetStudentSummary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.reportService.GetStudentSummary(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary, "Summary generated successfully"))
}
