package repository

import (
	"context"
	"fmt"

	"movielist/internal/data/entity"
	"movielist/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Scope retrieval for analytics
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error)
	FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.MovieStatus) ([]*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	// Derived facts for badges and profiles
	CountWatchedByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	SumWatchTimeByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, genre, release_year, runtime, poster_url,
       status, rating, review, user_id, created_at, updated_at`

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, genre, release_year, runtime, poster_url,
		                    status, rating, review, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.ReleaseYear,
		movie.Runtime,
		movie.PosterURL,
		movie.Status,
		movie.Rating,
		movie.Review,
		movie.UserID,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&movie.ReleaseYear,
		&movie.Runtime,
		&movie.PosterURL,
		&movie.Status,
		&movie.Rating,
		&movie.Review,
		&movie.UserID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genre = $3, release_year = $4, runtime = $5,
		    poster_url = $6, status = $7, rating = $8, review = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Genre,
		movie.ReleaseYear,
		movie.Runtime,
		movie.PosterURL,
		movie.Status,
		movie.Rating,
		movie.Review,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie not found")
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie not found")
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func (r *movieRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryMovies(ctx, query, userID)
}

func (r *movieRepository) FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.MovieStatus) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`
	return r.queryMovies(ctx, query, userID, status)
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY created_at DESC`
	return r.queryMovies(ctx, query)
}

func (r *movieRepository) CountWatchedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM movies WHERE user_id = $1 AND status = $2`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID, entity.StatusWatched).Scan(&count); err != nil {
		r.log.Error("Failed to count watched movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("failed to count watched movies: %w", err)
	}

	return count, nil
}

func (r *movieRepository) SumWatchTimeByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		SELECT COALESCE(SUM(runtime), 0)
		FROM movies
		WHERE user_id = $1 AND status = $2 AND runtime IS NOT NULL
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, userID, entity.StatusWatched).Scan(&total); err != nil {
		r.log.Error("Failed to sum watch time",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("failed to sum watch time: %w", err)
	}

	return total, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}

func (r *movieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query movies", zap.Error(err))
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Genre,
			&movie.ReleaseYear,
			&movie.Runtime,
			&movie.PosterURL,
			&movie.Status,
			&movie.Rating,
			&movie.Review,
			&movie.UserID,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return movies, nil
}
