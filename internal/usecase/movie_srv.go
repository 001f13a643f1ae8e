package usecase

import (
	"context"
	"fmt"
	"time"

	"movielist/internal/data/entity"
	"movielist/internal/data/repository"
	"movielist/internal/dto/request"
	"movielist/internal/dto/response"
	"movielist/pkg/apperr"
	"movielist/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error)
	GetWatched(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	AddMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	MarkWatched(ctx context.Context, movieID string, userID uuid.UUID, rating *int, review *string) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string, userID uuid.UUID) error
	GetUserMovies(ctx context.Context, userID string, status *entity.MovieStatus) ([]response.MovieResponse, error)
}

type movieService struct {
	repo  *repository.Repository
	badge BadgeService
	log   *zap.Logger
}

func NewMovieService(repo *repository.Repository, badge BadgeService, log *zap.Logger) MovieService {
	return &movieService{
		repo:  repo,
		badge: badge,
		log:   log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindByUserAndStatus(ctx, userID, entity.StatusWishlist)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	return s.buildMovieResponses(ctx, movies)
}

func (s *movieService) GetWatched(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindByUserAndStatus(ctx, userID, entity.StatusWatched)
	if err != nil {
		return nil, fmt.Errorf("get watched: %w", err)
	}
	return s.buildMovieResponses(ctx, movies)
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return s.buildMovieResponse(ctx, movie)
}

func (s *movieService) AddMovie(ctx context.Context, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, apperr.Invalid("validation failed: " + utils.FormatValidationErrors(errs))
	}

	// New movies always start on the wishlist; rating and review only
	// become meaningful once the movie is marked watched.
	now := time.Now()
	movie := &entity.Movie{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseYear: req.ReleaseYear,
		Runtime:     req.Runtime,
		PosterURL:   req.PosterURL,
		Status:      entity.StatusWishlist,
		UserID:      userID,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to add movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("add movie: %w", err)
	}

	s.log.Info("Movie added to wishlist",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.String("user_id", userID.String()),
	)

	return s.buildMovieResponse(ctx, movie)
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, userID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, apperr.Invalid("validation failed: " + utils.FormatValidationErrors(errs))
	}

	movie, err := s.findOwnedMovie(ctx, movieID, userID, "update")
	if err != nil {
		return nil, err
	}

	movie.Title = req.Title
	movie.Genre = req.Genre
	movie.ReleaseYear = req.ReleaseYear
	movie.Runtime = req.Runtime
	movie.PosterURL = req.PosterURL

	// Rating and review stick to the watched state only.
	if movie.Watched() {
		movie.Rating = req.Rating
		movie.Review = req.Review
	}

	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	return s.buildMovieResponse(ctx, movie)
}

func (s *movieService) MarkWatched(ctx context.Context, movieID string, userID uuid.UUID, rating *int, review *string) (*response.MovieResponse, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, apperr.Invalid("rating must be between 1 and 5")
	}

	movie, err := s.findOwnedMovie(ctx, movieID, userID, "update")
	if err != nil {
		return nil, err
	}

	movie.Status = entity.StatusWatched
	movie.Rating = rating
	movie.Review = review
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to mark movie watched",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("mark watched: %w", err)
	}

	// Watched count and watch time just changed; badges may follow.
	awarded, err := s.badge.EvaluateForUser(ctx, userID)
	if err != nil {
		s.log.Warn("Badge evaluation failed after mark-watched",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		// The movie update itself succeeded; don't fail the request.
	} else if len(awarded) > 0 {
		s.log.Info("Badges awarded",
			zap.Strings("badges", awarded),
			zap.String("user_id", userID.String()),
		)
	}

	return s.buildMovieResponse(ctx, movie)
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string, userID uuid.UUID) error {
	movie, err := s.findOwnedMovie(ctx, movieID, userID, "delete")
	if err != nil {
		return err
	}

	if err := s.repo.Movie.Delete(ctx, movie.ID); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	// Earned badges are deliberately left alone: they are achievements,
	// not live derived state.
	return nil
}

func (s *movieService) GetUserMovies(ctx context.Context, userID string, status *entity.MovieStatus) ([]response.MovieResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Invalid(fmt.Sprintf("invalid user ID format: %s", userID))
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", "id", userID)
	}

	var movies []*entity.Movie
	if status != nil {
		movies, err = s.repo.Movie.FindByUserAndStatus(ctx, userUUID, *status)
	} else {
		movies, err = s.repo.Movie.FindByUser(ctx, userUUID)
	}
	if err != nil {
		return nil, fmt.Errorf("get user movies: %w", err)
	}

	return s.buildMovieResponses(ctx, movies)
}

// ==================== HELPER METHODS ====================

func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperr.Invalid(fmt.Sprintf("invalid movie ID format: %s", movieID))
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, apperr.NotFound("movie", "id", movieID)
	}

	return movie, nil
}

func (s *movieService) findOwnedMovie(ctx context.Context, movieID string, userID uuid.UUID, action string) (*entity.Movie, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if movie.UserID != userID {
		return nil, apperr.PermissionDenied(fmt.Sprintf("you don't have permission to %s this movie", action))
	}

	return movie, nil
}

func (s *movieService) buildMovieResponse(ctx context.Context, movie *entity.Movie) (*response.MovieResponse, error) {
	username := ""
	if owner, err := s.repo.User.FindByID(ctx, movie.UserID); err == nil && owner != nil {
		username = owner.Username
	}

	likes, err := s.repo.Like.CountByMovie(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	comments, err := s.repo.Comment.CountByMovie(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	resp := response.MovieToResponse(movie, username, likes, comments)
	return &resp, nil
}

func (s *movieService) buildMovieResponses(ctx context.Context, movies []*entity.Movie) ([]response.MovieResponse, error) {
	responses := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		resp, err := s.buildMovieResponse(ctx, movie)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}
