package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the shared error taxonomy:
// unauthenticated, forbidden, not-found, conflict, validation,
// service-unavailable and internal.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found")))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))

	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))

	case errors.Is(err, apperrors.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Schedule not found")))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errMessage(err, "Resource not found"))))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists")))

	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConflict, "Student already enrolled in course")))

	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConflict, errMessage(err, "Conflict"))))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errMessage(err, "Validation failed"))))

	case errors.Is(err, apperrors.ErrProviderUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Assistant is temporarily unavailable")))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// errMessage surfaces the wrapped message when there is one, otherwise the
// fallback. Internal errors never leak their message to the caller.
func errMessage(err error, fallback string) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
