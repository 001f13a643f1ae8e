package wire

import (
	"net/http"

	"movielist/internal/adaptor"
	"movielist/internal/data/repository"
	"movielist/internal/usecase"
	"movielist/pkg/middleware"
	"movielist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the full dependency graph and returns the configured app.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	wireMovie(r, handler.Movie)
	wireAnalytics(r, handler.Analytics)
	wireSocial(r, handler.Social)
	wireUser(r, handler.User)
	wireOmdb(r, handler.Omdb)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
