package wire

import (
	"movielist/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/api/users", func(r chi.Router) {
		// Fixed paths first so chi never treats them as a {username}.
		r.Get("/me", userHandler.GetCurrentProfile)
		r.Put("/me", userHandler.UpdateProfile)
		r.Get("/me/badges", userHandler.GetBadges)
		r.Get("/leaderboard", userHandler.GetLeaderboard)

		r.Post("/follow/{username}", userHandler.FollowUser)
		r.Post("/unfollow/{username}", userHandler.UnfollowUser)
		r.Get("/followers", userHandler.GetFollowers)
		r.Get("/following", userHandler.GetFollowing)

		r.Get("/{username}", userHandler.GetProfile)
	})
}
