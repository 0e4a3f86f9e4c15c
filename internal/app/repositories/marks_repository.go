package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/dberrors"
)

// IMarksRepository defines the interface for marks database operations
type IMarksRepository interface {
	SaveMarks(ctx context.Context, marks *models.InternalMarks) error
	GetMarksByStudent(ctx context.Context, studentID int64) ([]*models.InternalMarks, error)
	GetMarksByCourse(ctx context.Context, courseID int64) ([]*models.InternalMarks, error)
}

// MarksRepository handles rows in the 'internal_marks' table
type MarksRepository struct {
	db *pgxpool.Pool
}

// NewMarksRepository creates a new MarksRepository
func NewMarksRepository(db *pgxpool.Pool) *MarksRepository {
	return &MarksRepository{db: db}
}

// SaveMarks upserts the three sub-scores for a (student, course) pair in
// one statement: either a new row is inserted or all three scores of the
// existing row are overwritten, never a partial subset. Concurrent upserts
// resolve last-writer-wins inside Postgres.
func (r *MarksRepository) SaveMarks(ctx context.Context, marks *models.InternalMarks) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO internal_marks (student_id, course_id, internal1, internal2, internal3, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		ON CONFLICT ON CONSTRAINT internal_marks_student_course_key
		DO UPDATE SET internal1 = EXCLUDED.internal1,
		              internal2 = EXCLUDED.internal2,
		              internal3 = EXCLUDED.internal3,
		              updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at`,
		marks.StudentID, marks.CourseID, marks.Internal1, marks.Internal2, marks.Internal3).
		Scan(&marks.ID, &marks.UpdatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("student or course does not exist")
		}
		return fmt.Errorf("error saving marks: %w", err)
	}

	return nil
}

// GetMarksByStudent lists a student's marks joined with course names
func (r *MarksRepository) GetMarksByStudent(ctx context.Context, studentID int64) ([]*models.InternalMarks, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.student_id, m.course_id, m.internal1, m.internal2, m.internal3,
		       m.updated_at, c.name
		FROM internal_marks m
		JOIN courses c ON c.id = m.course_id
		WHERE m.student_id = $1
		ORDER BY m.id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing marks: %w", err)
	}
	defer rows.Close()

	return scanMarks(rows)
}

// GetMarksByCourse lists all recorded marks for one course
func (r *MarksRepository) GetMarksByCourse(ctx context.Context, courseID int64) ([]*models.InternalMarks, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.student_id, m.course_id, m.internal1, m.internal2, m.internal3,
		       m.updated_at, c.name
		FROM internal_marks m
		JOIN courses c ON c.id = m.course_id
		WHERE m.course_id = $1
		ORDER BY m.id`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing marks: %w", err)
	}
	defer rows.Close()

	return scanMarks(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanMarks(rows pgxRows) ([]*models.InternalMarks, error) {
	var marks []*models.InternalMarks
	for rows.Next() {
		m := &models.InternalMarks{}
		if err := rows.Scan(
			&m.ID, &m.StudentID, &m.CourseID, &m.Internal1, &m.Internal2, &m.Internal3,
			&m.UpdatedAt, &m.CourseName); err != nil {
			return nil, fmt.Errorf("error scanning marks: %w", err)
		}
		marks = append(marks, m)
	}

	return marks, rows.Err()
}
