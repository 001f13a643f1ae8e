package wire

import (
	"time"

	"movielist/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func wireOmdb(r chi.Router, omdbHandler *adaptor.OmdbHandler) {
	r.Route("/api/omdb", func(r chi.Router) {
		// Keep upstream quota usage in check.
		r.Use(httprate.LimitByIP(30, time.Minute))

		r.Get("/search", omdbHandler.Search)
		r.Get("/details/{imdbId}", omdbHandler.Details)
	})
}
