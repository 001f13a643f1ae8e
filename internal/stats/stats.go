// Package stats is the pure aggregation core: every function takes an
// already-fetched snapshot of movie rows and returns computed values.
// No I/O, no retained state.
package stats

import (
	"sort"

	"movielist/internal/data/entity"
)

// NoFavoriteGenre is the sentinel reported when no watched movie
// carries a genre.
const NoFavoriteGenre = "None"

// Summary aggregates a scope of movies (one user's collection or the
// whole system).
type Summary struct {
	TotalMovies    int64
	WatchedMovies  int64
	WishlistMovies int64
	TotalWatchTime int64 // minutes, watched movies only
	AverageRating  float64
	FavoriteGenre  string
}

// GenreStat is one row of the genre breakdown. Percentage is computed
// against the full scope size, not just watched movies with a genre.
type GenreStat struct {
	Genre         string
	Count         int64
	Percentage    float64
	AverageRating float64
}

// MonthlyStat is one calendar-month bucket (YYYY-MM, UTC) of watched
// movies, keyed by their last-updated timestamp as a watched-date proxy.
type MonthlyStat struct {
	Month         string
	MoviesWatched int64
	WatchTime     int64
	AverageRating float64
}

// Summarize computes totals over the full scope. Empty input yields an
// all-zero summary with FavoriteGenre = "None".
func Summarize(movies []*entity.Movie) Summary {
	watched := filterWatched(movies)

	return Summary{
		TotalMovies:    int64(len(movies)),
		WatchedMovies:  int64(len(watched)),
		WishlistMovies: int64(len(movies) - len(watched)),
		TotalWatchTime: TotalWatchTime(watched),
		AverageRating:  AverageRating(watched),
		FavoriteGenre:  FavoriteGenre(watched),
	}
}

// TotalWatchTime sums runtime over the given movies; a missing runtime
// contributes 0.
func TotalWatchTime(movies []*entity.Movie) int64 {
	var total int64
	for _, m := range movies {
		if m.Runtime != nil {
			total += int64(*m.Runtime)
		}
	}
	return total
}

// AverageRating is the mean of present ratings, 0.0 when none qualify.
func AverageRating(movies []*entity.Movie) float64 {
	var sum, count int64
	for _, m := range movies {
		if m.Rating != nil {
			sum += int64(*m.Rating)
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	return float64(sum) / float64(count)
}

// FavoriteGenre is the most frequent non-empty genre among the given
// movies. Ties break to the lexicographically smallest genre so the
// result is deterministic regardless of row order.
func FavoriteGenre(movies []*entity.Movie) string {
	counts := countByGenre(movies)
	if len(counts) == 0 {
		return NoFavoriteGenre
	}

	best := ""
	var bestCount int64
	for genre, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || genre < best)) {
			best = genre
			bestCount = count
		}
	}
	return best
}

// GenreBreakdown groups WATCHED movies with a non-empty genre. The
// percentage denominator is the full scope size (all statuses). Sorted
// by count descending, ties lexicographically by genre.
func GenreBreakdown(movies []*entity.Movie) []GenreStat {
	scopeSize := len(movies)
	watched := filterWatched(movies)

	byGenre := make(map[string][]*entity.Movie)
	for _, m := range watched {
		if m.Genre == nil || *m.Genre == "" {
			continue
		}
		byGenre[*m.Genre] = append(byGenre[*m.Genre], m)
	}

	breakdown := make([]GenreStat, 0, len(byGenre))
	for genre, genreMovies := range byGenre {
		count := int64(len(genreMovies))
		var percentage float64
		if scopeSize > 0 {
			percentage = float64(count) / float64(scopeSize) * 100
		}
		breakdown = append(breakdown, GenreStat{
			Genre:         genre,
			Count:         count,
			Percentage:    percentage,
			AverageRating: AverageRating(genreMovies),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Genre < breakdown[j].Genre
	})

	return breakdown
}

// MonthlyRollup buckets WATCHED movies by the UTC calendar month of
// their last-updated timestamp. Buckets sort ascending by month string.
func MonthlyRollup(movies []*entity.Movie) []MonthlyStat {
	watched := filterWatched(movies)

	byMonth := make(map[string][]*entity.Movie)
	for _, m := range watched {
		month := m.UpdatedAt.UTC().Format("2006-01")
		byMonth[month] = append(byMonth[month], m)
	}

	rollup := make([]MonthlyStat, 0, len(byMonth))
	for month, monthMovies := range byMonth {
		rollup = append(rollup, MonthlyStat{
			Month:         month,
			MoviesWatched: int64(len(monthMovies)),
			WatchTime:     TotalWatchTime(monthMovies),
			AverageRating: AverageRating(monthMovies),
		})
	}

	sort.Slice(rollup, func(i, j int) bool {
		return rollup[i].Month < rollup[j].Month
	})

	return rollup
}

func filterWatched(movies []*entity.Movie) []*entity.Movie {
	watched := make([]*entity.Movie, 0, len(movies))
	for _, m := range movies {
		if m.Watched() {
			watched = append(watched, m)
		}
	}
	return watched
}

func countByGenre(movies []*entity.Movie) map[string]int64 {
	counts := make(map[string]int64)
	for _, m := range movies {
		if m.Genre != nil && *m.Genre != "" {
			counts[*m.Genre]++
		}
	}
	return counts
}
