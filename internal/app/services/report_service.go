package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/llm"
)

// summaryTranscriptTurns is how many of the student's most recent chat
// turns are included in the summary prompt.
const summaryTranscriptTurns = 10

// ReportService builds staff-facing reports: the per-course grade
// distribution and the AI-generated student summary
type ReportService struct {
	userRepo         repositories.IUserRepository
	courseRepo       repositories.ICourseRepository
	marksRepo        repositories.IMarksRepository
	enrollmentRepo   repositories.IEnrollmentRepository
	conversationRepo repositories.IConversationRepository
	provider         llm.CompletionProvider
	logger           zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	marksRepo repositories.IMarksRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
	conversationRepo repositories.IConversationRepository,
	provider llm.CompletionProvider,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		userRepo:         userRepo,
		courseRepo:       courseRepo,
		marksRepo:        marksRepo,
		enrollmentRepo:   enrollmentRepo,
		conversationRepo: conversationRepo,
		provider:         provider,
		logger:           logger,
	}
}

// GetGradeDistribution returns pass/fail counts per course. Every course
// appears in the result, including courses with no recorded marks.
func (s *ReportService) GetGradeDistribution(ctx context.Context) ([]dto.CourseDistribution, error) {
	courses, err := s.courseRepo.GetAllCourses(ctx)
	if err != nil {
		return nil, err
	}

	distribution := make([]dto.CourseDistribution, 0, len(courses))
	for _, course := range courses {
		marks, err := s.marksRepo.GetMarksByCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}

		entry := dto.CourseDistribution{
			CourseID:   course.ID,
			CourseName: course.Name,
		}
		for _, m := range marks {
			if models.GradeStatus(m.Total()) == models.StatusPass {
				entry.PassCount++
			} else {
				entry.FailCount++
			}
		}
		distribution = append(distribution, entry)
	}

	return distribution, nil
}

// GetStudentSummary composes a student's enrollments, marks and recent
// chat activity into one prompt and asks the completion provider for a
// narrative summary. The summary is regenerated on every request and is
// never stored.
func (s *ReportService) GetStudentSummary(ctx context.Context, studentID int64) (*dto.StudentSummaryResponse, error) {
	student, err := s.userRepo.GetUserByID(ctx, studentID)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.RoleType != models.RoleStudent {
		return nil, apperrors.ErrStudentNotFound
	}

	if s.provider == nil {
		return nil, apperrors.ErrProviderUnavailable
	}

	prompt, err := s.buildSummaryPrompt(ctx, student)
	if err != nil {
		return nil, err
	}

	summary, err := s.provider.Complete(ctx,
		"You are an academic advisor at a college. Write a short narrative summary "+
			"of the student's academic standing based on the data provided. Be factual "+
			"and constructive.",
		nil, prompt)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentId", studentID).Msg("Summary generation failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}

	return &dto.StudentSummaryResponse{
		StudentID: studentID,
		Name:      student.Name,
		Summary:   summary,
	}, nil
}

// buildSummaryPrompt renders the student's enrollments, marks and last
// chat turns (oldest first) as plain text sections.
func (s *ReportService) buildSummaryPrompt(ctx context.Context, student *models.User) (string, error) {
	enrollments, err := s.enrollmentRepo.GetEnrollmentsByStudent(ctx, student.ID)
	if err != nil {
		return "", err
	}

	marks, err := s.marksRepo.GetMarksByStudent(ctx, student.ID)
	if err != nil {
		return "", err
	}

	recent, err := s.conversationRepo.GetRecentConversations(ctx, student.ID, summaryTranscriptTurns)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Student: %s\n", student.Name)
	if student.YearOfStudy != nil {
		fmt.Fprintf(&b, "Year of study: %d\n", *student.YearOfStudy)
	}

	b.WriteString("\nEnrolled courses:\n")
	if len(enrollments) == 0 {
		b.WriteString("- none\n")
	}
	for _, e := range enrollments {
		fmt.Fprintf(&b, "- %s\n", e.CourseName)
	}

	b.WriteString("\nInternal marks:\n")
	if len(marks) == 0 {
		b.WriteString("- none recorded\n")
	}
	for _, m := range marks {
		fmt.Fprintf(&b, "- %s: %d + %d + %d = %d/%d (%s)\n",
			m.CourseName, m.Internal1, m.Internal2, m.Internal3,
			m.Total(), models.TotalMax, m.Status())
	}

	b.WriteString("\nRecent chatbot questions:\n")
	if len(recent) == 0 {
		b.WriteString("- none\n")
	}
	for _, conv := range recent {
		fmt.Fprintf(&b, "- %s\n", conv.Message)
	}

	return b.String(), nil
}
