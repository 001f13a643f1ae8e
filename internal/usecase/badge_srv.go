package usecase

import (
	"context"
	"fmt"

	"movielist/internal/data/repository"
	"movielist/internal/stats"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BadgeService evaluates the badge catalog against a user's current
// watch facts. Awarding is idempotent: the store ignores duplicates,
// and badges are never revoked.
type BadgeService interface {
	// EvaluateForUser awards every newly-qualifying badge and returns
	// the names actually awarded this call.
	EvaluateForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	// GetUserBadges lists held badge names in earned order.
	GetUserBadges(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type badgeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBadgeService(repo *repository.Repository, log *zap.Logger) BadgeService {
	return &badgeService{
		repo: repo,
		log:  log.With(zap.String("service", "badge")),
	}
}

func (s *badgeService) EvaluateForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	watchedCount, err := s.repo.Movie.CountWatchedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count watched movies: %w", err)
	}

	watchTime, err := s.repo.Movie.SumWatchTimeByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum watch time: %w", err)
	}

	owned, err := s.ownedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	facts := stats.WatchFacts{
		WatchedCount:     watchedCount,
		WatchTimeMinutes: watchTime,
	}

	var awarded []string
	for _, name := range stats.NewlyEarned(facts, owned) {
		inserted, err := s.repo.Badge.Award(ctx, userID, name)
		if err != nil {
			return awarded, fmt.Errorf("award badge %q: %w", name, err)
		}
		// inserted == false means another evaluation won the race;
		// either way the user holds the badge now.
		if inserted {
			awarded = append(awarded, name)
			s.log.Info("Badge awarded",
				zap.String("badge", name),
				zap.String("user_id", userID.String()),
			)
		}
	}

	return awarded, nil
}

func (s *badgeService) GetUserBadges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	badges, err := s.repo.Badge.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get badges: %w", err)
	}

	names := make([]string, len(badges))
	for i, badge := range badges {
		names[i] = badge.BadgeName
	}
	return names, nil
}

func (s *badgeService) ownedSet(ctx context.Context, userID uuid.UUID) (map[string]bool, error) {
	badges, err := s.repo.Badge.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get badges: %w", err)
	}

	owned := make(map[string]bool, len(badges))
	for _, badge := range badges {
		owned[badge.BadgeName] = true
	}
	return owned, nil
}
