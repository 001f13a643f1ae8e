package stats

import (
	"testing"
	"time"

	"movielist/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movie(status entity.MovieStatus, genre string, runtime *int, rating *int) *entity.Movie {
	m := &entity.Movie{
		Title:   "test",
		Status:  status,
		Runtime: runtime,
		Rating:  rating,
	}
	if genre != "" {
		m.Genre = &genre
	}
	return m
}

func intPtr(v int) *int { return &v }

func TestSummarize(t *testing.T) {
	t.Run("mixed collection", func(t *testing.T) {
		movies := []*entity.Movie{
			movie(entity.StatusWatched, "Action", intPtr(100), intPtr(5)),
			movie(entity.StatusWatched, "Drama", intPtr(150), intPtr(3)),
			movie(entity.StatusWatched, "Action", nil, nil),
			movie(entity.StatusWishlist, "Comedy", intPtr(90), nil),
		}

		s := Summarize(movies)

		assert.Equal(t, int64(4), s.TotalMovies)
		assert.Equal(t, int64(3), s.WatchedMovies)
		assert.Equal(t, int64(1), s.WishlistMovies)
		assert.Equal(t, int64(250), s.TotalWatchTime)
		assert.Equal(t, 4.0, s.AverageRating)
		assert.Equal(t, "Action", s.FavoriteGenre)
	})

	t.Run("empty input", func(t *testing.T) {
		s := Summarize(nil)

		assert.Equal(t, int64(0), s.TotalMovies)
		assert.Equal(t, int64(0), s.TotalWatchTime)
		assert.Equal(t, 0.0, s.AverageRating)
		assert.Equal(t, NoFavoriteGenre, s.FavoriteGenre)
	})

	t.Run("wishlist only contributes nothing watched", func(t *testing.T) {
		movies := []*entity.Movie{
			movie(entity.StatusWishlist, "Action", intPtr(120), nil),
			movie(entity.StatusWishlist, "Drama", intPtr(90), nil),
		}

		s := Summarize(movies)

		assert.Equal(t, int64(2), s.TotalMovies)
		assert.Equal(t, int64(0), s.WatchedMovies)
		assert.Equal(t, int64(0), s.TotalWatchTime)
		assert.Equal(t, NoFavoriteGenre, s.FavoriteGenre)
	})
}

func TestAverageRating(t *testing.T) {
	t.Run("skips missing ratings", func(t *testing.T) {
		movies := []*entity.Movie{
			movie(entity.StatusWatched, "", nil, intPtr(5)),
			movie(entity.StatusWatched, "", nil, intPtr(3)),
			movie(entity.StatusWatched, "", nil, nil),
		}
		assert.Equal(t, 4.0, AverageRating(movies))
	})

	t.Run("zero when nothing rated", func(t *testing.T) {
		movies := []*entity.Movie{
			movie(entity.StatusWatched, "", nil, nil),
		}
		assert.Equal(t, 0.0, AverageRating(movies))
	})
}

func TestFavoriteGenre(t *testing.T) {
	t.Run("ties break lexicographically", func(t *testing.T) {
		movies := []*entity.Movie{
			movie(entity.StatusWatched, "Drama", nil, nil),
			movie(entity.StatusWatched, "Action", nil, nil),
		}
		assert.Equal(t, "Action", FavoriteGenre(movies))
	})

	t.Run("ignores empty genres", func(t *testing.T) {
		movies := []*entity.Movie{
			movie(entity.StatusWatched, "", nil, nil),
		}
		assert.Equal(t, NoFavoriteGenre, FavoriteGenre(movies))
	})
}

func TestGenreBreakdown(t *testing.T) {
	t.Run("percentages use full scope size", func(t *testing.T) {
		movies := []*entity.Movie{
			movie(entity.StatusWatched, "Action", nil, intPtr(5)),
			movie(entity.StatusWatched, "Action", nil, intPtr(3)),
			movie(entity.StatusWatched, "Drama", nil, intPtr(4)),
			movie(entity.StatusWishlist, "Comedy", nil, nil),
		}

		breakdown := GenreBreakdown(movies)
		require.Len(t, breakdown, 2)

		assert.Equal(t, "Action", breakdown[0].Genre)
		assert.Equal(t, int64(2), breakdown[0].Count)
		assert.Equal(t, 50.0, breakdown[0].Percentage)
		assert.Equal(t, 4.0, breakdown[0].AverageRating)

		assert.Equal(t, "Drama", breakdown[1].Genre)
		assert.Equal(t, int64(1), breakdown[1].Count)
		assert.Equal(t, 25.0, breakdown[1].Percentage)
	})

	t.Run("equal counts sort by genre", func(t *testing.T) {
		movies := []*entity.Movie{
			movie(entity.StatusWatched, "Drama", nil, nil),
			movie(entity.StatusWatched, "Action", nil, nil),
		}

		breakdown := GenreBreakdown(movies)
		require.Len(t, breakdown, 2)
		assert.Equal(t, "Action", breakdown[0].Genre)
		assert.Equal(t, "Drama", breakdown[1].Genre)
	})

	t.Run("empty input yields empty breakdown", func(t *testing.T) {
		assert.Empty(t, GenreBreakdown(nil))
	})
}

func TestMonthlyRollup(t *testing.T) {
	at := func(year int, month time.Month) time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
	}

	t.Run("buckets by month ascending", func(t *testing.T) {
		older := movie(entity.StatusWatched, "", intPtr(100), intPtr(4))
		older.UpdatedAt = at(2026, time.March)
		newer := movie(entity.StatusWatched, "", intPtr(120), intPtr(5))
		newer.UpdatedAt = at(2026, time.May)
		sameMonth := movie(entity.StatusWatched, "", intPtr(80), nil)
		sameMonth.UpdatedAt = at(2026, time.May)
		wishlist := movie(entity.StatusWishlist, "", intPtr(90), nil)
		wishlist.UpdatedAt = at(2026, time.May)

		rollup := MonthlyRollup([]*entity.Movie{newer, older, sameMonth, wishlist})
		require.Len(t, rollup, 2)

		assert.Equal(t, "2026-03", rollup[0].Month)
		assert.Equal(t, int64(1), rollup[0].MoviesWatched)
		assert.Equal(t, int64(100), rollup[0].WatchTime)

		assert.Equal(t, "2026-05", rollup[1].Month)
		assert.Equal(t, int64(2), rollup[1].MoviesWatched)
		assert.Equal(t, int64(200), rollup[1].WatchTime)
		assert.Equal(t, 5.0, rollup[1].AverageRating)
	})

	t.Run("month boundary is UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*3600)
		m := movie(entity.StatusWatched, "", nil, nil)
		// Local June 1st, still May 31st in UTC.
		m.UpdatedAt = time.Date(2026, time.June, 1, 5, 0, 0, 0, loc)

		rollup := MonthlyRollup([]*entity.Movie{m})
		require.Len(t, rollup, 1)
		assert.Equal(t, "2026-05", rollup[0].Month)
	})
}
