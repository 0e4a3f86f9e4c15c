package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
)

func newMarksFixture() (*MarksService, *fakeMarksRepo) {
	userRepo := newFakeUserRepo(
		&models.User{ID: 7, Name: "Sam", Email: "sam@college.edu", RoleType: models.RoleStudent},
		&models.User{ID: 2, Name: "Pat", Email: "pat@college.edu", RoleType: models.RoleStaff},
	)
	courseRepo := newFakeCourseRepo(&models.Course{ID: 1, Name: "Operating Systems"})
	marksRepo := &fakeMarksRepo{}
	return NewMarksService(marksRepo, userRepo, courseRepo, zerolog.Nop()), marksRepo
}

func intPtr(v int) *int { return &v }

func TestSaveMarksUpsert(t *testing.T) {
	svc, marksRepo := newMarksFixture()

	resp, err := svc.SaveMarks(context.Background(), &dto.SaveMarksRequest{
		StudentID: 7, CourseID: 1,
		Internal1: intPtr(20), Internal2: intPtr(22), Internal3: intPtr(19),
	})
	if err != nil {
		t.Fatalf("SaveMarks returned error: %v", err)
	}
	if resp.Total != 61 || resp.Status != models.StatusPass {
		t.Errorf("got total=%d status=%q, want 61 Pass", resp.Total, resp.Status)
	}

	// Saving again for the same pair replaces, never duplicates
	resp, err = svc.SaveMarks(context.Background(), &dto.SaveMarksRequest{
		StudentID: 7, CourseID: 1,
		Internal1: intPtr(5), Internal2: intPtr(5), Internal3: intPtr(5),
	})
	if err != nil {
		t.Fatalf("second SaveMarks returned error: %v", err)
	}
	if resp.Total != 15 || resp.Status != models.StatusFail {
		t.Errorf("got total=%d status=%q, want 15 Fail", resp.Total, resp.Status)
	}
	if len(marksRepo.rows) != 1 {
		t.Errorf("expected a single marks row after upsert, got %d", len(marksRepo.rows))
	}
}

func TestSaveMarksRejectsOutOfRangeScores(t *testing.T) {
	svc, marksRepo := newMarksFixture()

	tests := []struct {
		name    string
		i1, i2, i3 int
	}{
		{"negative score", -1, 10, 10},
		{"score above max", 10, 26, 10},
		{"third score above max", 10, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveMarks(context.Background(), &dto.SaveMarksRequest{
				StudentID: 7, CourseID: 1,
				Internal1: intPtr(tt.i1), Internal2: intPtr(tt.i2), Internal3: intPtr(tt.i3),
			})
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
	if len(marksRepo.rows) != 0 {
		t.Errorf("no rows should be written on validation failure, got %d", len(marksRepo.rows))
	}
}

func TestSaveMarksUnknownStudentOrCourse(t *testing.T) {
	svc, _ := newMarksFixture()

	if _, err := svc.SaveMarks(context.Background(), &dto.SaveMarksRequest{
		StudentID: 999, CourseID: 1,
		Internal1: intPtr(10), Internal2: intPtr(10), Internal3: intPtr(10),
	}); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}

	// A staff user is not a valid marks target
	if _, err := svc.SaveMarks(context.Background(), &dto.SaveMarksRequest{
		StudentID: 2, CourseID: 1,
		Internal1: intPtr(10), Internal2: intPtr(10), Internal3: intPtr(10),
	}); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound for staff target, got %v", err)
	}

	if _, err := svc.SaveMarks(context.Background(), &dto.SaveMarksRequest{
		StudentID: 7, CourseID: 999,
		Internal1: intPtr(10), Internal2: intPtr(10), Internal3: intPtr(10),
	}); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}
