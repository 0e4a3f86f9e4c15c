package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	CourseRepository       *CourseRepository
	ScheduleRepository     *ScheduleRepository
	EnrollmentRepository   *EnrollmentRepository
	MarksRepository        *MarksRepository
	ConversationRepository *ConversationRepository
	SystemConfigRepository *SystemConfigRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		CourseRepository:       NewCourseRepository(db),
		ScheduleRepository:     NewScheduleRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		MarksRepository:        NewMarksRepository(db),
		ConversationRepository: NewConversationRepository(db),
		SystemConfigRepository: NewSystemConfigRepository(db),
	}
}
