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

type SocialService interface {
	LikeMovie(ctx context.Context, movieID string, userID uuid.UUID) error
	UnlikeMovie(ctx context.Context, movieID string, userID uuid.UUID) error
	AddComment(ctx context.Context, movieID string, author *entity.User, req *request.CommentRequest) (*response.CommentResponse, error)
	GetMovieComments(ctx context.Context, movieID string) ([]response.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID string, actor *entity.User) error
	GetUserLikedMovies(ctx context.Context, userID string) ([]string, error)
}

type socialService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSocialService(repo *repository.Repository, log *zap.Logger) SocialService {
	return &socialService{
		repo: repo,
		log:  log.With(zap.String("service", "social")),
	}
}

func (s *socialService) LikeMovie(ctx context.Context, movieID string, userID uuid.UUID) error {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return err
	}

	inserted, err := s.repo.Like.Create(ctx, userID, movie.ID)
	if err != nil {
		return fmt.Errorf("like movie: %w", err)
	}
	if !inserted {
		return apperr.Conflict("you have already liked this movie")
	}

	s.log.Info("Movie liked",
		zap.String("movie_id", movieID),
		zap.String("user_id", userID.String()),
	)
	return nil
}

func (s *socialService) UnlikeMovie(ctx context.Context, movieID string, userID uuid.UUID) error {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Like.Delete(ctx, userID, movie.ID)
	if err != nil {
		return fmt.Errorf("unlike movie: %w", err)
	}
	if !deleted {
		return apperr.Conflict("you have not liked this movie")
	}

	return nil
}

func (s *socialService) AddComment(ctx context.Context, movieID string, author *entity.User, req *request.CommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add comment validation failed", zap.Any("errors", errs))
		return nil, apperr.Invalid("validation failed: " + utils.FormatValidationErrors(errs))
	}

	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Content: req.Content,
		UserID:  author.ID,
		MovieID: movie.ID,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.log.Info("Comment added",
		zap.String("comment_id", comment.ID.String()),
		zap.String("movie_id", movieID),
		zap.String("user_id", author.ID.String()),
	)

	resp := response.CommentToResponse(comment, author, movie.Title)
	return &resp, nil
}

func (s *socialService) GetMovieComments(ctx context.Context, movieID string) ([]response.CommentResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.FindByMovie(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("get comments: %w", err)
	}

	responses := make([]response.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		author, err := s.repo.User.FindByID(ctx, comment.UserID)
		if err != nil {
			return nil, fmt.Errorf("find comment author: %w", err)
		}
		responses = append(responses, response.CommentToResponse(comment, author, movie.Title))
	}

	return responses, nil
}

func (s *socialService) DeleteComment(ctx context.Context, commentID string, actor *entity.User) error {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return apperr.Invalid(fmt.Sprintf("invalid comment ID format: %s", commentID))
	}

	comment, err := s.repo.Comment.FindByID(ctx, commentUUID)
	if err != nil {
		return fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return apperr.NotFound("comment", "id", commentID)
	}

	// Owner or admin only.
	if comment.UserID != actor.ID && actor.Role != entity.RoleAdmin {
		return apperr.PermissionDenied("you don't have permission to delete this comment")
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}

func (s *socialService) GetUserLikedMovies(ctx context.Context, userID string) ([]string, error) {
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

	ids, err := s.repo.Like.MovieIDsByUser(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("get liked movies: %w", err)
	}

	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out, nil
}

func (s *socialService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
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
