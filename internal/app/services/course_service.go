package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/repositories"
)

// CourseService handles course catalog operations
type CourseService struct {
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// GetAllCourses lists the full course catalog
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAllCourses(ctx)
}

// GetCourseByID returns a single course
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetCourseByID(ctx, id)
}

// CreateCourse adds a course to the catalog
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CourseRequest) (*models.Course, error) {
	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		Instructor:  req.Instructor,
		YearOfStudy: req.YearOfStudy,
	}

	id, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = id

	s.logger.Info().Int64("courseId", id).Str("name", course.Name).Msg("Course created")
	return course, nil
}

// UpdateCourse replaces a course's editable fields
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.CourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = req.Name
	course.Description = req.Description
	course.Instructor = req.Instructor
	course.YearOfStudy = req.YearOfStudy

	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", id).Msg("Course updated")
	return course, nil
}

// DeleteCourse removes a course. Schedules, enrollments and marks for the
// course cascade at the database level.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.DeleteCourse(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}
