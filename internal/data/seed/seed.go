package seed

import (
	"context"
	"fmt"
	"time"

	"movielist/internal/data/entity"
	"movielist/internal/data/repository"
	"movielist/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Run populates an empty database with the guest user and a few demo
// movies. It is a no-op when any movie already exists, so restarting the
// server never duplicates data.
func Run(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	count, err := repo.Movie.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count movies: %w", err)
	}
	if count > 0 {
		log.Debug("Seed skipped, movies already present", zap.Int64("count", count))
		return nil
	}

	guest, err := ensureGuest(ctx, repo)
	if err != nil {
		return err
	}

	now := time.Now()
	movies := []*entity.Movie{
		{
			Title:       "Inception",
			Genre:       utils.StringPtr("Sci-Fi"),
			ReleaseYear: intPtr(2010),
			Runtime:     intPtr(148),
			Status:      entity.StatusWishlist,
		},
		{
			Title:       "The Dark Knight",
			Genre:       utils.StringPtr("Action"),
			ReleaseYear: intPtr(2008),
			Runtime:     intPtr(152),
			Status:      entity.StatusWatched,
			Rating:      intPtr(5),
			Review:      utils.StringPtr("Masterpiece."),
		},
		{
			Title:       "Spirited Away",
			Genre:       utils.StringPtr("Animation"),
			ReleaseYear: intPtr(2001),
			Runtime:     intPtr(125),
			Status:      entity.StatusWatched,
			Rating:      intPtr(4),
			Review:      utils.StringPtr("Beautiful from start to finish."),
		},
	}

	for _, movie := range movies {
		movie.ID = uuid.New()
		movie.CreatedAt = now
		movie.UpdatedAt = now
		movie.UserID = guest.ID
		if err := repo.Movie.Create(ctx, movie); err != nil {
			return fmt.Errorf("seed movie %q: %w", movie.Title, err)
		}
	}

	log.Info("Seed data loaded",
		zap.String("user", guest.Username),
		zap.Int("movies", len(movies)),
	)
	return nil
}

func ensureGuest(ctx context.Context, repo *repository.Repository) (*entity.User, error) {
	user, err := repo.User.FindByUsername(ctx, "guest")
	if err != nil {
		return nil, fmt.Errorf("find guest user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("guest"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}

	now := time.Now()
	user = &entity.User{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     "guest",
		Email:        "guest@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create guest user: %w", err)
	}
	return user, nil
}

func intPtr(v int) *int { return &v }
