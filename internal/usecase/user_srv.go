package usecase

import (
	"context"
	"fmt"
	"time"

	"movielist/internal/data/entity"
	"movielist/internal/data/repository"
	"movielist/internal/dto/request"
	"movielist/internal/dto/response"
	"movielist/internal/stats"
	"movielist/pkg/apperr"
	"movielist/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUsername is the single identity the system operates as; there
// is no session or login model.
const DefaultUsername = "guest"

type UserService interface {
	// GetOrCreateDefaultUser resolves the guest identity, creating it
	// on first use. Handlers call this instead of reading any session.
	GetOrCreateDefaultUser(ctx context.Context) (*entity.User, error)

	GetUserProfile(ctx context.Context, username string, viewer *entity.User) (*response.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, user *entity.User, req *request.ProfileUpdateRequest) (*response.UserProfileResponse, error)

	FollowUser(ctx context.Context, follower *entity.User, followingUsername string) error
	UnfollowUser(ctx context.Context, follower *entity.User, followingUsername string) error
	GetFollowers(ctx context.Context, username string) ([]response.UserProfileResponse, error)
	GetFollowing(ctx context.Context, username string) ([]response.UserProfileResponse, error)

	GetLeaderboard(ctx context.Context) ([]response.LeaderboardEntryResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetOrCreateDefaultUser(ctx context.Context) (*entity.User, error) {
	user, err := s.repo.User.FindByUsername(ctx, DefaultUsername)
	if err != nil {
		return nil, fmt.Errorf("find default user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultUsername), bcrypt.DefaultCost)
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
		Username:     DefaultUsername,
		Email:        "guest@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create default user: %w", err)
	}

	s.log.Info("Default user created", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (s *userService) GetUserProfile(ctx context.Context, username string, viewer *entity.User) (*response.UserProfileResponse, error) {
	user, err := s.findUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.buildProfile(ctx, user, viewer)
}

func (s *userService) UpdateProfile(ctx context.Context, user *entity.User, req *request.ProfileUpdateRequest) (*response.UserProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Profile update validation failed", zap.Any("errors", errs))
		return nil, apperr.Invalid("validation failed: " + utils.FormatValidationErrors(errs))
	}

	if req.FavoriteGenre != nil {
		user.FavoriteGenre = req.FavoriteGenre
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return s.buildProfile(ctx, user, nil)
}

func (s *userService) FollowUser(ctx context.Context, follower *entity.User, followingUsername string) error {
	if follower.Username == followingUsername {
		return apperr.Invalid("you cannot follow yourself")
	}

	following, err := s.findUserByUsername(ctx, followingUsername)
	if err != nil {
		return err
	}

	inserted, err := s.repo.Follow.Create(ctx, follower.ID, following.ID)
	if err != nil {
		return fmt.Errorf("follow user: %w", err)
	}
	if !inserted {
		return apperr.Conflict("you are already following this user")
	}

	s.log.Info("User followed",
		zap.String("follower", follower.Username),
		zap.String("following", followingUsername),
	)
	return nil
}

func (s *userService) UnfollowUser(ctx context.Context, follower *entity.User, followingUsername string) error {
	following, err := s.findUserByUsername(ctx, followingUsername)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Follow.Delete(ctx, follower.ID, following.ID)
	if err != nil {
		return fmt.Errorf("unfollow user: %w", err)
	}
	if !deleted {
		return apperr.Conflict("you are not following this user")
	}

	return nil
}

func (s *userService) GetFollowers(ctx context.Context, username string) ([]response.UserProfileResponse, error) {
	user, err := s.findUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ids, err := s.repo.Follow.FollowerIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get follower ids: %w", err)
	}

	return s.buildProfiles(ctx, ids)
}

func (s *userService) GetFollowing(ctx context.Context, username string) ([]response.UserProfileResponse, error) {
	user, err := s.findUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ids, err := s.repo.Follow.FollowingIDs(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get following ids: %w", err)
	}

	return s.buildProfiles(ctx, ids)
}

func (s *userService) GetLeaderboard(ctx context.Context) ([]response.LeaderboardEntryResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	entries := make([]stats.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		watched, err := s.repo.Movie.CountWatchedByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("count watched for %s: %w", user.Username, err)
		}
		entries = append(entries, stats.LeaderboardEntry{
			UserID:       user.ID,
			Username:     user.Username,
			WatchedCount: watched,
		})
	}

	return response.LeaderboardToResponse(stats.RankByWatched(entries)), nil
}

// ==================== HELPER METHODS ====================

func (s *userService) findUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", "username", username)
	}
	return user, nil
}

func (s *userService) buildProfile(ctx context.Context, user *entity.User, viewer *entity.User) (*response.UserProfileResponse, error) {
	watched, err := s.repo.Movie.CountWatchedByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count watched: %w", err)
	}

	watchTime, err := s.repo.Movie.SumWatchTimeByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("sum watch time: %w", err)
	}

	followers, err := s.repo.Follow.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	following, err := s.repo.Follow.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	badges, err := s.repo.Badge.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get badges: %w", err)
	}
	badgeNames := make([]string, len(badges))
	for i, badge := range badges {
		badgeNames[i] = badge.BadgeName
	}

	isFollowing := false
	if viewer != nil && viewer.ID != user.ID {
		isFollowing, err = s.repo.Follow.Exists(ctx, viewer.ID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("check following: %w", err)
		}
	}

	return &response.UserProfileResponse{
		ID:                 user.ID.String(),
		Username:           user.Username,
		Email:              user.Email,
		FavoriteGenre:      user.FavoriteGenre,
		ProfilePictureURL:  user.ProfilePictureURL,
		Role:               string(user.Role),
		MoviesWatchedCount: watched,
		TotalWatchTime:     watchTime,
		FollowersCount:     followers,
		FollowingCount:     following,
		Badges:             badgeNames,
		IsFollowing:        isFollowing,
	}, nil
}

func (s *userService) buildProfiles(ctx context.Context, ids []uuid.UUID) ([]response.UserProfileResponse, error) {
	users, err := s.repo.User.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	profiles := make([]response.UserProfileResponse, 0, len(users))
	for _, user := range users {
		profile, err := s.buildProfile(ctx, user, nil)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}
