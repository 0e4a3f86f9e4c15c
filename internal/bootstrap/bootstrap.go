package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ecetin/collegehub/internal/app/controllers"
	appMigrations "github.com/ecetin/collegehub/internal/app/migrations"
	appRepos "github.com/ecetin/collegehub/internal/app/repositories"
	appRoutes "github.com/ecetin/collegehub/internal/app/routes"
	appServices "github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/config"
	"github.com/ecetin/collegehub/internal/db"
	appMiddleware "github.com/ecetin/collegehub/internal/middleware"
	pkgAuth "github.com/ecetin/collegehub/internal/pkg/auth"
	"github.com/ecetin/collegehub/internal/pkg/llm"
	"github.com/ecetin/collegehub/internal/pkg/logger"
	"github.com/ecetin/collegehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	JWTService           *pkgAuth.JWTService
	Provider             llm.CompletionProvider
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	CourseController     *appControllers.CourseController
	ScheduleController   *appControllers.ScheduleController
	EnrollmentController *appControllers.EnrollmentController
	MarksController      *appControllers.MarksController
	ChatController       *appControllers.ChatController
	ReportController     *appControllers.ReportController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log but keep starting; the portal works without seed data
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// The completion provider is optional: without an API key the portal
	// runs normally and only chat/summary endpoints report unavailable.
	if cfg.Gemini.APIKey != "" {
		provider, err := llm.NewGeminiProvider(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize completion provider, chat endpoints disabled")
		} else {
			deps.Provider = provider
			lgr.Info().Str("model", cfg.Gemini.Model).Msg("Completion provider initialized")
		}
	} else {
		lgr.Warn().Msg("No completion provider API key configured, chat endpoints disabled")
	}

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.Provider, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.Services.ScheduleService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.Services.EnrollmentService)
	deps.MarksController = appControllers.NewMarksController(deps.Services.MarksService)
	deps.ChatController = appControllers.NewChatController(deps.Services.ChatService)
	deps.ReportController = appControllers.NewReportController(deps.Services.ReportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.ScheduleController,
		deps.EnrollmentController,
		deps.MarksController,
		deps.ChatController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	return router
}
