package stats

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankByWatched(t *testing.T) {
	entry := func(name string, count int64) LeaderboardEntry {
		return LeaderboardEntry{UserID: uuid.New(), Username: name, WatchedCount: count}
	}

	t.Run("orders by watched count descending", func(t *testing.T) {
		ranked := RankByWatched([]LeaderboardEntry{
			entry("low", 1),
			entry("high", 10),
			entry("mid", 5),
		})

		require.Len(t, ranked, 3)
		assert.Equal(t, "high", ranked[0].Username)
		assert.Equal(t, "mid", ranked[1].Username)
		assert.Equal(t, "low", ranked[2].Username)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		ranked := RankByWatched([]LeaderboardEntry{
			entry("first", 3),
			entry("second", 3),
		})

		require.Len(t, ranked, 2)
		assert.Equal(t, "first", ranked[0].Username)
		assert.Equal(t, "second", ranked[1].Username)
	})

	t.Run("caps at leaderboard size", func(t *testing.T) {
		entries := make([]LeaderboardEntry, 0, LeaderboardSize+5)
		for i := 0; i < LeaderboardSize+5; i++ {
			entries = append(entries, entry(fmt.Sprintf("user%d", i), int64(i)))
		}

		ranked := RankByWatched(entries)
		assert.Len(t, ranked, LeaderboardSize)
		assert.Equal(t, int64(LeaderboardSize+4), ranked[0].WatchedCount)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		entries := []LeaderboardEntry{
			entry("low", 1),
			entry("high", 10),
		}

		RankByWatched(entries)
		assert.Equal(t, "low", entries[0].Username)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, RankByWatched(nil))
	})
}
