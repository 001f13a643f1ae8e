package repository

import (
	"context"
	"fmt"
	"time"

	"movielist/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LikeRepository interface {
	// Create inserts the like; returns false when the (user, movie)
	// pair already exists.
	Create(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
	// Delete removes the like; returns false when no such like exists.
	Delete(ctx context.Context, userID, movieID uuid.UUID) (bool, error)

	CountByMovie(ctx context.Context, movieID uuid.UUID) (int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	MovieIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Create(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO likes (user_id, movie_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, userID, movieID, time.Now())
	if err != nil {
		r.log.Error("Failed to create like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return false, fmt.Errorf("failed to create like: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	query := `DELETE FROM likes WHERE user_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to delete like",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *likeRepository) CountByMovie(ctx context.Context, movieID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM likes WHERE movie_id = $1`, movieID)
}

func (r *likeRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM likes WHERE user_id = $1`, userID)
}

func (r *likeRepository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM likes`)
}

func (r *likeRepository) MovieIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT movie_id FROM likes WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to query liked movie IDs",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to query liked movies: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan movie id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return ids, nil
}

func (r *likeRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count likes", zap.Error(err))
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
