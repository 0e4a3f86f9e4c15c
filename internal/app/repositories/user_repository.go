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

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserRepository handles user rows in the 'users' table
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user and returns its id. The password must
// already be hashed by the caller.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, email, password, role, year_of_study)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Name, user.Email, user.Password, user.RoleType, user.YearOfStudy).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password, role, year_of_study, created_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.RoleType, &user.YearOfStudy, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password, role, year_of_study, created_at
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.RoleType, &user.YearOfStudy, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// GetAllUsers lists every user, newest first
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, password, role, year_of_study, created_at
		FROM users
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password,
			&user.RoleType, &user.YearOfStudy, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// DeleteUser removes a user. Conversations, marks and enrollments cascade
// at the database level.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
