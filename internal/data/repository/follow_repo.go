package repository

import (
	"context"
	"fmt"
	"time"

	"movielist/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FollowRepository interface {
	// Create inserts the edge; returns false when it already exists.
	Create(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	// Delete removes the edge; returns false when it did not exist.
	Delete(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)

	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type followRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFollowRepository(db database.PgxIface, log *zap.Logger) FollowRepository {
	return &followRepository{
		db:  db,
		log: log.With(zap.String("repository", "follow")),
	}
}

func (r *followRepository) Create(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, followerID, followingID, time.Now())
	if err != nil {
		r.log.Error("Failed to create follow",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()),
		)
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	result, err := r.db.Exec(ctx, query, followerID, followingID)
	if err != nil {
		r.log.Error("Failed to delete follow",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()),
		)
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, followerID, followingID).Scan(&exists); err != nil {
		r.log.Error("Failed to check follow", zap.Error(err))
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows WHERE following_id = $1`, userID)
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows WHERE follower_id = $1`, userID)
}

func (r *followRepository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follows`)
}

func (r *followRepository) FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.queryIDs(ctx, `SELECT follower_id FROM follows WHERE following_id = $1 ORDER BY created_at`, userID)
}

func (r *followRepository) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.queryIDs(ctx, `SELECT following_id FROM follows WHERE follower_id = $1 ORDER BY created_at`, userID)
}

func (r *followRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count follows", zap.Error(err))
		return 0, fmt.Errorf("failed to count follows: %w", err)
	}
	return count, nil
}

func (r *followRepository) queryIDs(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query follow IDs", zap.Error(err))
		return nil, fmt.Errorf("failed to query follows: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return ids, nil
}
