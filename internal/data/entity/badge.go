package entity

import (
	"time"

	"github.com/google/uuid"
)

// Badge is a write-once achievement: at most one row per (user, badge name),
// never removed even if the qualifying movies are later deleted.
type Badge struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	BadgeName string    `db:"badge_name"`
	EarnedAt  time.Time `db:"earned_at"`
}
