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

type SocialHandler struct {
	service usecase.SocialService
	users   usecase.UserService
	log     *zap.Logger
}

func NewSocialHandler(service usecase.SocialService, users usecase.UserService, log *zap.Logger) *SocialHandler {
	return &SocialHandler{
		service: service,
		users:   users,
		log:     log.With(zap.String("handler", "social")),
	}
}

// LikeMovie handles POST /api/social/movies/{id}/like
func (h *SocialHandler) LikeMovie(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	movieID := chi.URLParam(r, "id")

	if err := h.service.LikeMovie(r.Context(), movieID, user.ID); err != nil {
		handleServiceError(w, h.log, err, "like movie")
		return
	}

	utils.ResponseCreated(w, "Movie liked", nil)
}

// UnlikeMovie handles DELETE /api/social/movies/{id}/unlike
func (h *SocialHandler) UnlikeMovie(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	movieID := chi.URLParam(r, "id")

	if err := h.service.UnlikeMovie(r.Context(), movieID, user.ID); err != nil {
		handleServiceError(w, h.log, err, "unlike movie")
		return
	}

	utils.ResponseSuccess(w, "Movie unliked", nil)
}

// AddComment handles POST /api/social/movies/{id}/comments
func (h *SocialHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	movieID := chi.URLParam(r, "id")

	var req request.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.AddComment(r.Context(), movieID, user, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add comment")
		return
	}

	utils.ResponseCreated(w, "Comment added", comment)
}

// GetMovieComments handles GET /api/social/movies/{id}/comments
func (h *SocialHandler) GetMovieComments(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	comments, err := h.service.GetMovieComments(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie comments")
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved successfully", comments)
}

// DeleteComment handles DELETE /api/social/comments/{id}
func (h *SocialHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	commentID := chi.URLParam(r, "id")

	if err := h.service.DeleteComment(r.Context(), commentID, user); err != nil {
		handleServiceError(w, h.log, err, "delete comment")
		return
	}

	utils.ResponseSuccess(w, "Comment deleted", nil)
}

// GetUserLikedMovies handles GET /api/social/users/{userId}/likes
func (h *SocialHandler) GetUserLikedMovies(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	movieIDs, err := h.service.GetUserLikedMovies(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get liked movies")
		return
	}

	utils.ResponseSuccess(w, "Liked movies retrieved successfully", movieIDs)
}
