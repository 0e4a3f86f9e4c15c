package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/middleware"
)

// CourseController handles course catalog endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// parseIDParam reads a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// GetAllCourses lists the course catalog
// @Summary List courses
// @Description Get the full course catalog
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses, "Courses retrieved successfully"))
}

// GetCourseByID returns one course
// @Summary Get course
// @Description Get a single course by its id
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course retrieved successfully"))
}

// CreateCourse adds a course
// @Summary Create course
// @Description Add a new course to the catalog (staff/admin only)
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course details"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course, "Course created successfully"))
}

// UpdateCourse replaces a course's fields
// @Summary Update course
// @Description Update an existing course (staff/admin only)
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64)
// @Param request body dto.CourseRequest true "Course details"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course, "Course updated successfully"))
}

// DeleteCourse removes a course
// @Summary Delete course
// @Description Delete a course and its schedules, enrollments and marks (staff/admin only)
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}, "Course deleted successfully"))
}
