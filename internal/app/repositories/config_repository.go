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

// ISystemConfigRepository defines the interface for system_config access
type ISystemConfigRepository interface {
	GetValue(ctx context.Context, key string) (*models.SystemConfig, error)
	SetValue(ctx context.Context, key, value string) (*models.SystemConfig, error)
}

// SystemConfigRepository handles the key-value 'system_config' table
type SystemConfigRepository struct {
	db *pgxpool.Pool
}

// NewSystemConfigRepository creates a new SystemConfigRepository
func NewSystemConfigRepository(db *pgxpool.Pool) *SystemConfigRepository {
	return &SystemConfigRepository{db: db}
}

// GetValue reads one configuration row
func (r *SystemConfigRepository) GetValue(ctx context.Context, key string) (*models.SystemConfig, error) {
	cfg := &models.SystemConfig{}
	err := r.db.QueryRow(ctx, `
		SELECT key, value, updated_at
		FROM system_config
		WHERE key = $1`,
		key).Scan(&cfg.Key, &cfg.Value, &cfg.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error fetching config: %w", err)
	}

	return cfg, nil
}

// SetValue upserts one configuration row
func (r *SystemConfigRepository) SetValue(ctx context.Context, key, value string) (*models.SystemConfig, error) {
	cfg := &models.SystemConfig{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO system_config (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
		RETURNING key, value, updated_at`,
		key, value).Scan(&cfg.Key, &cfg.Value, &cfg.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error saving config: %w", err)
	}

	return cfg, nil
}
