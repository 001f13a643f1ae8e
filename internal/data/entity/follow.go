package entity

import (
	"time"

	"github.com/google/uuid"
)

// Follow is unique per (follower, following) pair. Self-follow is rejected
// before it ever reaches the store.
type Follow struct {
	FollowerID  uuid.UUID `db:"follower_id"`
	FollowingID uuid.UUID `db:"following_id"`
	CreatedAt   time.Time `db:"created_at"`
}
