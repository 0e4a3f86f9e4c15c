package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/models/dto"
	"github.com/ecetin/collegehub/internal/app/repositories"
)

// ScheduleService handles timetable operations
type ScheduleService struct {
	scheduleRepo repositories.IScheduleRepository
	courseRepo   repositories.ICourseRepository
	logger       zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(scheduleRepo repositories.IScheduleRepository, courseRepo repositories.ICourseRepository, logger zerolog.Logger) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		courseRepo:   courseRepo,
		logger:       logger,
	}
}

// GetAllSchedules lists every schedule entry with course details joined
func (s *ScheduleService) GetAllSchedules(ctx context.Context) ([]*models.Schedule, error) {
	return s.scheduleRepo.GetAllSchedules(ctx)
}

// GetSchedulesByInstructor lists schedule entries whose course is taught
// by the given instructor. The match is case-insensitive.
func (s *ScheduleService) GetSchedulesByInstructor(ctx context.Context, instructor string) ([]*models.Schedule, error) {
	return s.scheduleRepo.GetSchedulesByInstructor(ctx, strings.TrimSpace(instructor))
}

// CreateSchedule adds a timetable entry for an existing course
func (s *ScheduleService) CreateSchedule(ctx context.Context, req *dto.ScheduleRequest) (*models.Schedule, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		CourseID:  req.CourseID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	}

	id, err := s.scheduleRepo.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, err
	}
	schedule.ID = id
	schedule.CourseName = course.Name
	schedule.Instructor = course.Instructor

	s.logger.Info().Int64("scheduleId", id).Int64("courseId", req.CourseID).Msg("Schedule created")
	return schedule, nil
}

// UpdateSchedule replaces a schedule entry's editable fields
func (s *ScheduleService) UpdateSchedule(ctx context.Context, id int64, req *dto.ScheduleRequest) (*models.Schedule, error) {
	schedule, err := s.scheduleRepo.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CourseID != schedule.CourseID {
		if _, err := s.courseRepo.GetCourseByID(ctx, req.CourseID); err != nil {
			return nil, err
		}
	}

	schedule.CourseID = req.CourseID
	schedule.DayOfWeek = req.DayOfWeek
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime
	schedule.Location = req.Location

	if err := s.scheduleRepo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("scheduleId", id).Msg("Schedule updated")
	return s.scheduleRepo.GetScheduleByID(ctx, id)
}

// DeleteSchedule removes a timetable entry
func (s *ScheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	if err := s.scheduleRepo.DeleteSchedule(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("scheduleId", id).Msg("Schedule deleted")
	return nil
}
