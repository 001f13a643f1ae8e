package usecase

import (
	"context"
	"fmt"

	"movielist/internal/data/entity"
	"movielist/internal/data/repository"
	"movielist/internal/dto/response"
	"movielist/internal/stats"
	"movielist/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyticsService fetches record snapshots and hands them to the pure
// stats core; it never computes aggregates itself.
type AnalyticsService interface {
	GetUserAnalytics(ctx context.Context, userID string) (*response.AnalyticsResponse, error)
	GetUserGenreStats(ctx context.Context, userID string) ([]response.GenreStatsResponse, error)
	GetUserMonthlyStats(ctx context.Context, userID string) ([]response.MonthlyStatsResponse, error)

	GetGlobalAnalytics(ctx context.Context) (*response.AnalyticsResponse, error)
	GetGlobalGenreStats(ctx context.Context) ([]response.GenreStatsResponse, error)
	GetGlobalMonthlyStats(ctx context.Context) ([]response.MonthlyStatsResponse, error)
}

type analyticsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAnalyticsService(repo *repository.Repository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		repo: repo,
		log:  log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) GetUserAnalytics(ctx context.Context, userID string) (*response.AnalyticsResponse, error) {
	userUUID, movies, err := s.userScope(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.SummaryToResponse(stats.Summarize(movies))

	if resp.TotalLikes, err = s.repo.Like.CountByUser(ctx, userUUID); err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	if resp.TotalComments, err = s.repo.Comment.CountByUser(ctx, userUUID); err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	if resp.TotalFollowers, err = s.repo.Follow.CountFollowers(ctx, userUUID); err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}
	if resp.TotalFollowing, err = s.repo.Follow.CountFollowing(ctx, userUUID); err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	s.log.Debug("User analytics computed",
		zap.String("user_id", userID),
		zap.Int64("total_movies", resp.TotalMovies),
	)

	return &resp, nil
}

func (s *analyticsService) GetUserGenreStats(ctx context.Context, userID string) ([]response.GenreStatsResponse, error) {
	_, movies, err := s.userScope(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.GenreStatsToResponse(stats.GenreBreakdown(movies)), nil
}

func (s *analyticsService) GetUserMonthlyStats(ctx context.Context, userID string) ([]response.MonthlyStatsResponse, error) {
	_, movies, err := s.userScope(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.MonthlyStatsToResponse(stats.MonthlyRollup(movies)), nil
}

func (s *analyticsService) GetGlobalAnalytics(ctx context.Context) (*response.AnalyticsResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all movies: %w", err)
	}

	resp := response.SummaryToResponse(stats.Summarize(movies))

	if resp.TotalLikes, err = s.repo.Like.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	if resp.TotalComments, err = s.repo.Comment.CountAll(ctx); err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	// Every follow edge is one follower and one following, so globally
	// the two totals are the same number.
	followCount, err := s.repo.Follow.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count follows: %w", err)
	}
	resp.TotalFollowers = followCount
	resp.TotalFollowing = followCount

	return &resp, nil
}

func (s *analyticsService) GetGlobalGenreStats(ctx context.Context) ([]response.GenreStatsResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all movies: %w", err)
	}
	return response.GenreStatsToResponse(stats.GenreBreakdown(movies)), nil
}

func (s *analyticsService) GetGlobalMonthlyStats(ctx context.Context) ([]response.MonthlyStatsResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all movies: %w", err)
	}
	return response.MonthlyStatsToResponse(stats.MonthlyRollup(movies)), nil
}

// userScope resolves the user and fetches their full movie collection.
func (s *analyticsService) userScope(ctx context.Context, userID string) (uuid.UUID, []*entity.Movie, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, nil, apperr.Invalid(fmt.Sprintf("invalid user ID format: %s", userID))
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return uuid.Nil, nil, apperr.NotFound("user", "id", userID)
	}

	movies, err := s.repo.Movie.FindByUser(ctx, userUUID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("get user movies: %w", err)
	}

	return userUUID, movies, nil
}
