package services

import (
	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/auth"
	"github.com/ecetin/collegehub/internal/pkg/llm"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	CourseService     *CourseService
	ScheduleService   *ScheduleService
	EnrollmentService *EnrollmentService
	MarksService      *MarksService
	ChatService       *ChatService
	ReportService     *ReportService
}

// NewServices initializes all services. The completion provider may be
// nil; chat and summary endpoints then report service-unavailable.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	provider llm.CompletionProvider,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService, logger),
		UserService:       NewUserService(repos.UserRepository, logger),
		CourseService:     NewCourseService(repos.CourseRepository, logger),
		ScheduleService:   NewScheduleService(repos.ScheduleRepository, repos.CourseRepository, logger),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, repos.UserRepository, repos.CourseRepository, logger),
		MarksService:      NewMarksService(repos.MarksRepository, repos.UserRepository, repos.CourseRepository, logger),
		ChatService:       NewChatService(repos.ConversationRepository, repos.SystemConfigRepository, provider, logger),
		ReportService:     NewReportService(repos.UserRepository, repos.CourseRepository, repos.MarksRepository, repos.EnrollmentRepository, repos.ConversationRepository, provider, logger),
	}
}
