package wire

import (
	"movielist/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAnalytics(r chi.Router, analyticsHandler *adaptor.AnalyticsHandler) {
	r.Route("/api/analytics", func(r chi.Router) {
		r.Get("/me", analyticsHandler.GetMyAnalytics)
		r.Get("/user/{userId}", analyticsHandler.GetUserAnalytics)

		r.Get("/genres/me", analyticsHandler.GetMyGenreStats)
		r.Get("/genres/user/{userId}", analyticsHandler.GetUserGenreStats)

		r.Get("/monthly/me", analyticsHandler.GetMyMonthlyStats)
		r.Get("/monthly/user/{userId}", analyticsHandler.GetUserMonthlyStats)

		r.Get("/global", analyticsHandler.GetGlobalAnalytics)
		r.Get("/global/genres", analyticsHandler.GetGlobalGenreStats)
		r.Get("/global/monthly", analyticsHandler.GetGlobalMonthlyStats)
	})
}
