package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is unique per (user, movie) pair.
type Like struct {
	UserID    uuid.UUID `db:"user_id"`
	MovieID   uuid.UUID `db:"movie_id"`
	CreatedAt time.Time `db:"created_at"`
}
