package wire

import (
	"movielist/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSocial(r chi.Router, socialHandler *adaptor.SocialHandler) {
	r.Route("/api/social", func(r chi.Router) {
		r.Post("/movies/{id}/like", socialHandler.LikeMovie)
		r.Delete("/movies/{id}/unlike", socialHandler.UnlikeMovie)

		r.Post("/movies/{id}/comments", socialHandler.AddComment)
		r.Get("/movies/{id}/comments", socialHandler.GetMovieComments)
		r.Delete("/comments/{id}", socialHandler.DeleteComment)

		r.Get("/users/{userId}/likes", socialHandler.GetUserLikedMovies)
	})
}
