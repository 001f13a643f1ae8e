package adaptor

import (
	"net/http"

	"movielist/internal/usecase"
	"movielist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OmdbHandler struct {
	service usecase.OmdbService
	log     *zap.Logger
}

func NewOmdbHandler(service usecase.OmdbService, log *zap.Logger) *OmdbHandler {
	return &OmdbHandler{
		service: service,
		log:     log.With(zap.String("handler", "omdb")),
	}
}

// Search handles GET /api/omdb/search?query=...
func (h *OmdbHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	body, err := h.service.Search(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "search omdb")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, body)
}

// Details handles GET /api/omdb/details/{imdbId}
func (h *OmdbHandler) Details(w http.ResponseWriter, r *http.Request) {
	imdbID := chi.URLParam(r, "imdbId")

	body, err := h.service.Details(r.Context(), imdbID)
	if err != nil {
		handleServiceError(w, h.log, err, "get omdb details")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, body)
}
