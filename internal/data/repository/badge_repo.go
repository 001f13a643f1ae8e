package repository

import (
	"context"
	"fmt"
	"time"

	"movielist/internal/data/entity"
	"movielist/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BadgeRepository interface {
	// Award inserts the badge atomically; the unique index on
	// (user_id, badge_name) makes a duplicate award a no-op. Returns
	// false when the user already held the badge.
	Award(ctx context.Context, userID uuid.UUID, badgeName string) (bool, error)
	// FindByUser returns badges in earned order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error)
}

type badgeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBadgeRepository(db database.PgxIface, log *zap.Logger) BadgeRepository {
	return &badgeRepository{
		db:  db,
		log: log.With(zap.String("repository", "badge")),
	}
}

func (r *badgeRepository) Award(ctx context.Context, userID uuid.UUID, badgeName string) (bool, error) {
	query := `
		INSERT INTO badges (id, user_id, badge_name, earned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, badge_name) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, uuid.New(), userID, badgeName, time.Now())
	if err != nil {
		r.log.Error("Failed to award badge",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("badge_name", badgeName),
		)
		return false, fmt.Errorf("failed to award badge: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *badgeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error) {
	query := `
		SELECT id, user_id, badge_name, earned_at
		FROM badges
		WHERE user_id = $1
		ORDER BY earned_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to query badges",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()

	var badges []*entity.Badge
	for rows.Next() {
		var badge entity.Badge
		err := rows.Scan(
			&badge.ID,
			&badge.UserID,
			&badge.BadgeName,
			&badge.EarnedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan badge row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		badges = append(badges, &badge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return badges, nil
}
