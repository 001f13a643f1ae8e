package adaptor

import (
	"net/http"

	"movielist/internal/data/entity"
	"movielist/internal/usecase"
	"movielist/pkg/apperr"
	"movielist/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie     *MovieHandler
	Analytics *AnalyticsHandler
	Social    *SocialHandler
	User      *UserHandler
	Omdb      *OmdbHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:     NewMovieHandler(service.Movie, service.User, log),
		Analytics: NewAnalyticsHandler(service.Analytics, service.User, log),
		Social:    NewSocialHandler(service.Social, service.User, log),
		User:      NewUserHandler(service.User, service.Badge, log),
		Omdb:      NewOmdbHandler(service.Omdb, log),
	}
}

// handleServiceError maps tagged service errors to HTTP responses.
// Untagged errors are treated as internal and never leak details.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		log.Warn(operation+" failed, not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())
	case apperr.KindConflict:
		log.Warn(operation+" failed, conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())
	case apperr.KindPermissionDenied:
		log.Warn(operation+" failed, permission denied", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())
	case apperr.KindInvalid:
		log.Warn(operation+" failed, invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)
	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// currentUser resolves the guest identity every request operates as.
// Returns nil after writing an error response when resolution fails.
func currentUser(w http.ResponseWriter, r *http.Request, users usecase.UserService, log *zap.Logger) *entity.User {
	user, err := users.GetOrCreateDefaultUser(r.Context())
	if err != nil {
		log.Error("Failed to resolve default user", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return nil
	}
	return user
}
