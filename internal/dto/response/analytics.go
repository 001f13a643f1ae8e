package response

import (
	"movielist/internal/stats"
)

type AnalyticsResponse struct {
	TotalMovies    int64   `json:"totalMovies"`
	WatchedMovies  int64   `json:"watchedMovies"`
	WishlistMovies int64   `json:"wishlistMovies"`
	TotalWatchTime int64   `json:"totalWatchTime"`
	AverageRating  float64 `json:"averageRating"`
	FavoriteGenre  string  `json:"favoriteGenre"`
	TotalLikes     int64   `json:"totalLikes"`
	TotalComments  int64   `json:"totalComments"`
	TotalFollowers int64   `json:"totalFollowers"`
	TotalFollowing int64   `json:"totalFollowing"`
}

type GenreStatsResponse struct {
	Genre         string  `json:"genre"`
	Count         int64   `json:"count"`
	Percentage    float64 `json:"percentage"`
	AverageRating float64 `json:"averageRating"`
}

type MonthlyStatsResponse struct {
	Month         string  `json:"month"` // YYYY-MM
	MoviesWatched int64   `json:"moviesWatched"`
	WatchTime     int64   `json:"watchTime"`
	AverageRating float64 `json:"averageRating"`
}

type LeaderboardEntryResponse struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	WatchedCount int64  `json:"watchedCount"`
}

func SummaryToResponse(s stats.Summary) AnalyticsResponse {
	return AnalyticsResponse{
		TotalMovies:    s.TotalMovies,
		WatchedMovies:  s.WatchedMovies,
		WishlistMovies: s.WishlistMovies,
		TotalWatchTime: s.TotalWatchTime,
		AverageRating:  s.AverageRating,
		FavoriteGenre:  s.FavoriteGenre,
	}
}

func GenreStatsToResponse(breakdown []stats.GenreStat) []GenreStatsResponse {
	out := make([]GenreStatsResponse, len(breakdown))
	for i, g := range breakdown {
		out[i] = GenreStatsResponse{
			Genre:         g.Genre,
			Count:         g.Count,
			Percentage:    g.Percentage,
			AverageRating: g.AverageRating,
		}
	}
	return out
}

func MonthlyStatsToResponse(rollup []stats.MonthlyStat) []MonthlyStatsResponse {
	out := make([]MonthlyStatsResponse, len(rollup))
	for i, m := range rollup {
		out[i] = MonthlyStatsResponse{
			Month:         m.Month,
			MoviesWatched: m.MoviesWatched,
			WatchTime:     m.WatchTime,
			AverageRating: m.AverageRating,
		}
	}
	return out
}

func LeaderboardToResponse(entries []stats.LeaderboardEntry) []LeaderboardEntryResponse {
	out := make([]LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryResponse{
			UserID:       e.UserID.String(),
			Username:     e.Username,
			WatchedCount: e.WatchedCount,
		}
	}
	return out
}
