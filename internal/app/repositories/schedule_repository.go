package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/dberrors"
)

// IScheduleRepository defines the interface for schedule database operations
type IScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (int64, error)
	GetScheduleByID(ctx context.Context, id int64) (*models.Schedule, error)
	GetAllSchedules(ctx context.Context) ([]*models.Schedule, error)
	GetSchedulesByInstructor(ctx context.Context, instructor string) ([]*models.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *models.Schedule) error
	DeleteSchedule(ctx context.Context, id int64) error
}

// ScheduleRepository handles rows in the 'schedules' table
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// CreateSchedule inserts a schedule entry for a course
func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *models.Schedule) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO schedules (course_id, day_of_week, start_time, end_time, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		schedule.CourseID, schedule.DayOfWeek, schedule.StartTime, schedule.EndTime, schedule.Location).Scan(&id)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		return 0, fmt.Errorf("error creating schedule: %w", err)
	}

	return id, nil
}

// GetScheduleByID retrieves a schedule entry with its course name
func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id int64) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.course_id, s.day_of_week, s.start_time, s.end_time, s.location,
		       c.name, c.instructor
		FROM schedules s
		JOIN courses c ON c.id = s.course_id
		WHERE s.id = $1`,
		id).Scan(
		&schedule.ID, &schedule.CourseID, &schedule.DayOfWeek, &schedule.StartTime,
		&schedule.EndTime, &schedule.Location, &schedule.CourseName, &schedule.Instructor)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error fetching schedule: %w", err)
	}

	return schedule, nil
}

// GetAllSchedules lists every schedule entry joined with its course
func (r *ScheduleRepository) GetAllSchedules(ctx context.Context) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, `
		SELECT s.id, s.course_id, s.day_of_week, s.start_time, s.end_time, s.location,
		       c.name, c.instructor
		FROM schedules s
		JOIN courses c ON c.id = s.course_id
		ORDER BY s.id`)
}

// GetSchedulesByInstructor lists schedule entries for one instructor name
func (r *ScheduleRepository) GetSchedulesByInstructor(ctx context.Context, instructor string) ([]*models.Schedule, error) {
	return r.querySchedules(ctx, `
		SELECT s.id, s.course_id, s.day_of_week, s.start_time, s.end_time, s.location,
		       c.name, c.instructor
		FROM schedules s
		JOIN courses c ON c.id = s.course_id
		WHERE c.instructor = $1
		ORDER BY s.id`, instructor)
}

func (r *ScheduleRepository) querySchedules(ctx context.Context, query string, args ...interface{}) ([]*models.Schedule, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		schedule := &models.Schedule{}
		if err := rows.Scan(
			&schedule.ID, &schedule.CourseID, &schedule.DayOfWeek, &schedule.StartTime,
			&schedule.EndTime, &schedule.Location, &schedule.CourseName, &schedule.Instructor); err != nil {
			return nil, fmt.Errorf("error scanning schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	return schedules, rows.Err()
}

// UpdateSchedule overwrites a schedule entry
func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE schedules
		SET course_id = $1, day_of_week = $2, start_time = $3, end_time = $4, location = $5
		WHERE id = $6`,
		schedule.CourseID, schedule.DayOfWeek, schedule.StartTime, schedule.EndTime,
		schedule.Location, schedule.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

// DeleteSchedule removes a schedule entry
func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}
