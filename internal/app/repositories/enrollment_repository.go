package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/dberrors"
)

// IEnrollmentRepository defines the interface for enrollment database operations
type IEnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, studentID, courseID int64) (int64, error)
	GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

// EnrollmentRepository handles rows in the 'enrollments' table
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// CreateEnrollment inserts a (student, course) pair. A duplicate pair or a
// reference to a missing student/course both surface as a conflict; the
// unique constraint is the only concurrency guard.
func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, studentID, courseID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id`,
		studentID, courseID).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewConflictError("student or course does not exist")
		}
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

// GetEnrollmentsByStudent lists a student's enrollments with course names
func (r *EnrollmentRepository) GetEnrollmentsByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.student_id, e.course_id, c.name
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e := &models.Enrollment{}
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.CourseName); err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}

	return enrollments, rows.Err()
}

// DeleteEnrollment removes an enrollment row
func (r *EnrollmentRepository) DeleteEnrollment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
