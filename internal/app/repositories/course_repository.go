package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
)

// ICourseRepository defines the interface for course database operations
type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// CourseRepository handles rows in the 'courses' table
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// CreateCourse inserts a new course and returns its id
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (name, description, instructor, year_of_study)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		course.Name, course.Description, course.Instructor, course.YearOfStudy).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course := &models.Course{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, instructor, year_of_study, created_at
		FROM courses
		WHERE id = $1`,
		id).Scan(
		&course.ID, &course.Name, &course.Description, &course.Instructor,
		&course.YearOfStudy, &course.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course: %w", err)
	}

	return course, nil
}

// GetAllCourses lists all courses
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, instructor, year_of_study, created_at
		FROM courses
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(
			&course.ID, &course.Name, &course.Description, &course.Instructor,
			&course.YearOfStudy, &course.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// UpdateCourse overwrites a course's fields
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET name = $1, description = $2, instructor = $3, year_of_study = $4
		WHERE id = $5`,
		course.Name, course.Description, course.Instructor, course.YearOfStudy, course.ID)

	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse removes a course. Schedules, marks and enrollments
// referencing it cascade at the database level.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
