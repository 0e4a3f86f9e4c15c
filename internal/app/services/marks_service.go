package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
)

// MarksService handles internal marks entry and retrieval
type MarksService struct {
	marksRepo  repositories.IMarksRepository
	userRepo   repositories.IUserRepository
	courseRepo repositories.ICourseRepository
	logger     zerolog.Logger
}

// NewMarksService creates a new MarksService
func NewMarksService(
	marksRepo repositories.IMarksRepository,
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	logger zerolog.Logger,
) *MarksService {
	return &MarksService{
		marksRepo:  marksRepo,
		userRepo:   userRepo,
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// SaveMarks records or replaces a student's three internal sub-scores for
// a course. The write is an upsert on the (student, course) pair and is
// all-or-nothing: one out-of-range score rejects the whole request.
func (s *MarksService) SaveMarks(ctx context.Context, req *dto.SaveMarksRequest) (*dto.MarksResponse, error) {
	scores := [3]int{*req.Internal1, *req.Internal2, *req.Internal3}
	for i, score := range scores {
		if !models.ValidSubScore(score) {
			return nil, fmt.Errorf("%w: internal%d must be between 0 and %d",
				apperrors.ErrValidationFailed, i+1, models.SubScoreMax)
		}
	}

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

	marks := &models.InternalMarks{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Internal1: scores[0],
		Internal2: scores[1],
		Internal3: scores[2],
	}

	if err := s.marksRepo.SaveMarks(ctx, marks); err != nil {
		return nil, err
	}
	marks.CourseName = course.Name

	s.logger.Info().
		Int64("studentId", req.StudentID).
		Int64("courseId", req.CourseID).
		Int("total", marks.Total()).
		Msg("Marks saved")

	resp := dto.NewMarksResponse(marks)
	return &resp, nil
}

// GetStudentMarks returns a student's marks across all courses, with the
// derived total and pass/fail status per course.
func (s *MarksService) GetStudentMarks(ctx context.Context, studentID int64) ([]dto.MarksResponse, error) {
	if _, err := s.userRepo.GetUserByID(ctx, studentID); err != nil {
		return nil, apperrors.ErrStudentNotFound
	}

	rows, err := s.marksRepo.GetMarksByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MarksResponse, 0, len(rows))
	for _, m := range rows {
		responses = append(responses, dto.NewMarksResponse(m))
	}
	return responses, nil
}
