package adaptor

import (
	"net/http"

	"movielist/internal/usecase"
	"movielist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	users   usecase.UserService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, users usecase.UserService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		users:   users,
		log:     log.With(zap.String("handler", "analytics")),
	}
}

// GetMyAnalytics handles GET /api/analytics/me
func (h *AnalyticsHandler) GetMyAnalytics(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}
	h.respondUserAnalytics(w, r, user.ID.String())
}

// GetUserAnalytics handles GET /api/analytics/user/{userId}
func (h *AnalyticsHandler) GetUserAnalytics(w http.ResponseWriter, r *http.Request) {
	h.respondUserAnalytics(w, r, chi.URLParam(r, "userId"))
}

func (h *AnalyticsHandler) respondUserAnalytics(w http.ResponseWriter, r *http.Request, userID string) {
	analytics, err := h.service.GetUserAnalytics(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user analytics")
		return
	}

	utils.ResponseSuccess(w, "Analytics retrieved successfully", analytics)
}

// GetMyGenreStats handles GET /api/analytics/genres/me
func (h *AnalyticsHandler) GetMyGenreStats(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}
	h.respondGenreStats(w, r, user.ID.String())
}

// GetUserGenreStats handles GET /api/analytics/genres/user/{userId}
func (h *AnalyticsHandler) GetUserGenreStats(w http.ResponseWriter, r *http.Request) {
	h.respondGenreStats(w, r, chi.URLParam(r, "userId"))
}

func (h *AnalyticsHandler) respondGenreStats(w http.ResponseWriter, r *http.Request, userID string) {
	genreStats, err := h.service.GetUserGenreStats(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user genre stats")
		return
	}

	utils.ResponseSuccess(w, "Genre stats retrieved successfully", genreStats)
}

// GetMyMonthlyStats handles GET /api/analytics/monthly/me
func (h *AnalyticsHandler) GetMyMonthlyStats(w http.ResponseWriter, r *http.Request) {
	user := currentUser(w, r, h.users, h.log)
	if user == nil {
		return
	}
	h.respondMonthlyStats(w, r, user.ID.String())
}

// GetUserMonthlyStats handles GET /api/analytics/monthly/user/{userId}
func (h *AnalyticsHandler) GetUserMonthlyStats(w http.ResponseWriter, r *http.Request) {
	h.respondMonthlyStats(w, r, chi.URLParam(r, "userId"))
}

func (h *AnalyticsHandler) respondMonthlyStats(w http.ResponseWriter, r *http.Request, userID string) {
	monthlyStats, err := h.service.GetUserMonthlyStats(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user monthly stats")
		return
	}

	utils.ResponseSuccess(w, "Monthly stats retrieved successfully", monthlyStats)
}

// GetGlobalAnalytics handles GET /api/analytics/global
func (h *AnalyticsHandler) GetGlobalAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.service.GetGlobalAnalytics(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get global analytics")
		return
	}

	utils.ResponseSuccess(w, "Global analytics retrieved successfully", analytics)
}

// GetGlobalGenreStats handles GET /api/analytics/global/genres
func (h *AnalyticsHandler) GetGlobalGenreStats(w http.ResponseWriter, r *http.Request) {
	genreStats, err := h.service.GetGlobalGenreStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get global genre stats")
		return
	}

	utils.ResponseSuccess(w, "Global genre stats retrieved successfully", genreStats)
}

// GetGlobalMonthlyStats handles GET /api/analytics/global/monthly
func (h *AnalyticsHandler) GetGlobalMonthlyStats(w http.ResponseWriter, r *http.Request) {
	monthlyStats, err := h.service.GetGlobalMonthlyStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get global monthly stats")
		return
	}

	utils.ResponseSuccess(w, "Global monthly stats retrieved successfully", monthlyStats)
}
