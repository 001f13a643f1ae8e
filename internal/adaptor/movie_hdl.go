package adaptor

import (
	"encoding/json"
	"net/http"

	"movielist/internal/data/entity"
	"movielist/internal/dto/request"
	"movielist/internal/usecase"
	"movielist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	users   usecase.UserService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, users usecase.UserService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		users:   users,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetWishlist handles GET /api/movies/wishlist
func (h *MovieHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	movies, err := h.service.GetWishlist(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, h.log, err, "get wishlist")
		return
	}

	utils.ResponseSuccess(w, "Wishlist retrieved successfully", movies)
}

// GetWatched handles GET /api/movies/watched
func (h *MovieHandler) GetWatched(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	movies, err := h.service.GetWatched(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, h.log, err, "get watched list")
		return
	}

	utils.ResponseSuccess(w, "Watched list retrieved successfully", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// AddMovie handles POST /api/movies
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.AddMovie(r.Context(), user.ID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add movie")
		return
	}

	utils.ResponseCreated(w, "Movie added to wishlist", movie)
}

// UpdateMovie handles PUT /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	movieID := chi.URLParam(r, "id")

	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, user.ID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// MarkWatched handles PUT /api/movies/{id}/mark-watched.
// Rating and review ride along as optional query parameters.
func (h *MovieHandler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	movieID := chi.URLParam(r, "id")
	query := r.URL.Query()
	rating := utils.ParseIntPtr(query.Get("rating"))
	var review *string
	if v := query.Get("review"); v != "" {
		review = utils.StringPtr(v)
	}

	movie, err := h.service.MarkWatched(r.Context(), movieID, user.ID, rating, review)
	if err != nil {
		handleServiceError(w, h.log, err, "mark movie watched")
		return
	}

	utils.ResponseSuccess(w, "Movie marked as watched", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}

	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID, user.ID); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

// GetUserMovies handles GET /api/movies/user/{userId}.
// An optional status filter narrows the list to WISHLIST or WATCHED.
func (h *MovieHandler) GetUserMovies(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var status *entity.MovieStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := entity.MovieStatus(v)
		if s != entity.StatusWishlist && s != entity.StatusWatched {
			utils.ResponseBadRequest(w, "Invalid status filter", nil)
			return
		}
		status = &s
	}

	movies, err := h.service.GetUserMovies(r.Context(), userID, status)
	if err != nil {
		handleServiceError(w, h.log, err, "get user movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}
