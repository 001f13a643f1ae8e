package stats

import (
	"sort"

	"github.com/google/uuid"
)

// LeaderboardSize caps the leaderboard; the API has no pagination.
const LeaderboardSize = 10

type LeaderboardEntry struct {
	UserID       uuid.UUID
	Username     string
	WatchedCount int64
}

// RankByWatched orders entries by watched count descending and returns
// at most LeaderboardSize of them. The sort is stable, so equal counts
// keep the input order.
func RankByWatched(entries []LeaderboardEntry) []LeaderboardEntry {
	ranked := make([]LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WatchedCount > ranked[j].WatchedCount
	})

	if len(ranked) > LeaderboardSize {
		ranked = ranked[:LeaderboardSize]
	}
	return ranked
}
