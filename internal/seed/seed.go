package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/app/services"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
	"github.com/ecetin/collegehub/internal/pkg/auth"
)

// Default admin credentials, created on first start so the portal is
// reachable before any real admin exists. Change the password after the
// first login.
const (
	defaultAdminEmail    = "admin@collegehub.local"
	defaultAdminPassword = "changeme123"
)

// CreateDefaultData ensures the default admin account and the chatbot
// base instruction exist. Errors are collected so one failed seed does
// not block the others.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	configRepo := repositories.NewSystemConfigRepository(dbPool)

	var finalErr error

	if err := seedAdminUser(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedSystemPrompt(ctx, configRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdminUser(ctx context.Context, userRepo *repositories.UserRepository, lgr zerolog.Logger) error {
	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	id, err := userRepo.CreateUser(ctx, &models.User{
		Name:     "Administrator",
		Email:    defaultAdminEmail,
		Password: hashed,
		RoleType: models.RoleAdmin,
	})
	if err != nil {
		// Concurrent start may have created it in the meantime
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Int64("userId", id).Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}

func seedSystemPrompt(ctx context.Context, configRepo *repositories.SystemConfigRepository, lgr zerolog.Logger) error {
	_, err := configRepo.GetValue(ctx, models.ConfigKeySystemPrompt)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		lgr.Error().Err(err).Msg("Error checking for chatbot system prompt")
		return err
	}

	if _, err := configRepo.SetValue(ctx, models.ConfigKeySystemPrompt, services.DefaultSystemPrompt); err != nil {
		lgr.Error().Err(err).Msg("Error seeding chatbot system prompt")
		return err
	}

	lgr.Info().Msg("Default chatbot system prompt seeded")
	return nil
}
