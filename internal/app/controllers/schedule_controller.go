package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/middleware"
)

// ScheduleController handles timetable endpoints
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GetAllSchedules lists the timetable
// @Summary List schedules
// @Description Get all schedule entries with course details
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Schedule} "Schedules retrieved successfully"
// @Router /schedules [get]
func (c *ScheduleController) GetAllSchedules(ctx *gin.Context) {
	schedules, err := c.scheduleService.GetAllSchedules(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedules, "Schedules retrieved successfully"))
}

// GetSchedulesByInstructor lists an instructor's timetable
// @Summary List schedules by instructor
// @Description Get schedule entries for courses taught by the named instructor
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param name path string true "Instructor name"
// @Success 200 {object} dto.APIResponse{data=[]models.Schedule} "Schedules retrieved successfully"
// @Router /schedules/instructor/{name} [get]
func (c *ScheduleController) GetSchedulesByInstructor(ctx *gin.Context) {
	name := ctx.Param("name")
	schedules, err := c.scheduleService.GetSchedulesByInstructor(ctx.Request.Context(), name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedules, "Schedules retrieved successfully"))
}

// CreateSchedule adds a timetable entry
// @Summary Create schedule
// @Description Add a schedule entry for a course (staff/admin only)
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleRequest true "Schedule details"
// @Success 201 {object} dto.APIResponse{data=models.Schedule} "Schedule created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.CreateSchedule(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(schedule, "Schedule created successfully"))
}

// UpdateSchedule replaces a timetable entry
// @Summary Update schedule
// @Description Update an existing schedule entry (staff/admin only)
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID" Format(int64)
// @Param request body dto.ScheduleRequest true "Schedule details"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule, "Schedule updated successfully"))
}

// DeleteSchedule removes a timetable entry
// @Summary Delete schedule
// @Description Delete a schedule entry (staff/admin only)
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Schedule deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.scheduleService.DeleteSchedule(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Schedule deleted"}, "Schedule deleted successfully"))
}
