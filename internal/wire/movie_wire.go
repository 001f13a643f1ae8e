package wire

import (
	"movielist/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/wishlist", movieHandler.GetWishlist)
		r.Get("/watched", movieHandler.GetWatched)
		r.Get("/user/{userId}", movieHandler.GetUserMovies)

		r.Post("/", movieHandler.AddMovie)
		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Put("/{id}/mark-watched", movieHandler.MarkWatched)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
