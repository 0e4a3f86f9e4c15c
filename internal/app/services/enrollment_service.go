package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
)

// EnrollmentService handles course enrollment operations
type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	userRepo       repositories.IUserRepository
	courseRepo     repositories.ICourseRepository
	logger         zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		logger:         logger,
	}
}

// Enroll registers a student in a course. The (student, course) pair is
// unique; enrolling twice is a conflict, not an update.
func (s *EnrollmentService) Enroll(ctx context.Context, req *dto.EnrollmentRequest) (*models.Enrollment, error) {
	student, err := s.userRepo.GetUserByID(ctx, req.StudentID)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.RoleType != models.RoleStudent {
		return nil, apperrors.ErrStudentNotFound
	}

	course, err := s.courseRepo.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	id, err := s.enrollmentRepo.CreateEnrollment(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", req.StudentID).Int64("courseId", req.CourseID).Msg("Student enrolled")
	return &models.Enrollment{
		ID:         id,
		StudentID:  req.StudentID,
		CourseID:   req.CourseID,
		CourseName: course.Name,
	}, nil
}

// GetStudentEnrollments lists a student's enrollments with course names
func (s *EnrollmentService) GetStudentEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if _, err := s.userRepo.GetUserByID(ctx, studentID); err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.enrollmentRepo.GetEnrollmentsByStudent(ctx, studentID)
}

// Unenroll removes an enrollment by its id
func (s *EnrollmentService) Unenroll(ctx context.Context, id int64) error {
	if err := s.enrollmentRepo.DeleteEnrollment(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("enrollmentId", id).Msg("Enrollment removed")
	return nil
}
