package adaptor

import (
	"encoding/json"
	"net/http"

	"movielist/internal/dto/request"
	"movielist/internal/usecase"
	"movielist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	badges  usecase.BadgeService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, badges usecase.BadgeService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		badges:  badges,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetCurrentProfile handles GET /api/users/me
func (h *UserHandler) GetCurrentProfile(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.service, h.log)
	if user == nil {
		return
	}

	profile, err := h.service.GetUserProfile(r.Context(), user.Username, nil)
	if err != nil {
		handleServiceError(w, h.log, err, "get current profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// GetProfile handles GET /api/users/{username}
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	viewer := currentUser(w, r, h.service, h.log)
	if viewer == nil {
		return
	}

	username := chi.URLParam(r, "username")

	profile, err := h.service.GetUserProfile(r.Context(), username, viewer)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// UpdateProfile handles PUT /api/users/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.service, h.log)
	if user == nil {
		return
	}

	var req request.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", profile)
}

// GetBadges handles GET /api/users/me/badges
func (h *UserHandler) GetBadges(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.service, h.log)
	if user == nil {
		return
	}

	badges, err := h.badges.GetUserBadges(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, h.log, err, "get badges")
		return
	}

	utils.ResponseSuccess(w, "Badges retrieved successfully", badges)
}

// FollowUser handles POST /api/users/follow/{username}
func (h *UserHandler) FollowUser(w http.ResponseWriter, r *http.Request) {
	follower := currentUser(w, r, h.service, h.log)
	if follower == nil {
		return
	}

	username := chi.URLParam(r, "username")

	if err := h.service.FollowUser(r.Context(), follower, username); err != nil {
		handleServiceError(w, h.log, err, "follow user")
		return
	}

	utils.ResponseCreated(w, "User followed", nil)
}

// UnfollowUser handles POST /api/users/unfollow/{username}
func (h *UserHandler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	follower := currentUser(w, r, h.service, h.log)
	if follower == nil {
		return
	}

	username := chi.URLParam(r, "username")

	if err := h.service.UnfollowUser(r.Context(), follower, username); err != nil {
		handleServiceError(w, h.log, err, "unfollow user")
		return
	}

	utils.ResponseSuccess(w, "User unfollowed", nil)
}

// GetFollowers handles GET /api/users/followers
func (h *UserHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.service, h.log)
	if user == nil {
		return
	}

	followers, err := h.service.GetFollowers(r.Context(), user.Username)
	if err != nil {
		handleServiceError(w, h.log, err, "get followers")
		return
	}

	utils.ResponseSuccess(w, "Followers retrieved successfully", followers)
}

// GetFollowing handles GET /api/users/following
func (h *UserHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.service, h.log)
	if user == nil {
		return
	}

	following, err := h.service.GetFollowing(r.Context(), user.Username)
	if err != nil {
		handleServiceError(w, h.log, err, "get following")
		return
	}

	utils.ResponseSuccess(w, "Following retrieved successfully", following)
}

// GetLeaderboard handles GET /api/users/leaderboard
func (h *UserHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	leaderboard, err := h.service.GetLeaderboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get leaderboard")
		return
	}

	utils.ResponseSuccess(w, "Leaderboard retrieved successfully", leaderboard)
}
