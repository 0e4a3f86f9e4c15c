package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ecetin/collegehub/internal/app/models"
	"github.com/ecetin/collegehub/internal/app/repositories"
	"github.com/ecetin/collegehub/internal/pkg/apperrors"
)

// UserService handles admin-level user management
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetAllUsers lists every registered user
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

// DeleteUser removes a user account. Admins cannot delete their own
// account, which keeps at least the acting admin alive.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID int64) error {
	if actorID == targetID {
		return apperrors.NewConflictError("cannot delete your own account")
	}

	if err := s.userRepo.DeleteUser(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", targetID).Int64("deletedBy", actorID).Msg("User deleted")
	return nil
}
