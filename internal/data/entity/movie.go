package entity

import (
	"github.com/google/uuid"
)

type MovieStatus string

const (
	StatusWishlist MovieStatus = "WISHLIST"
	StatusWatched  MovieStatus = "WATCHED"
)

type Movie struct {
	BaseNoDelete
	Title       string      `db:"title"`
	Genre       *string     `db:"genre"`
	ReleaseYear *int        `db:"release_year"`
	Runtime     *int        `db:"runtime"` // minutes
	PosterURL   *string     `db:"poster_url"`
	Status      MovieStatus `db:"status"`
	Rating      *int        `db:"rating"` // 1-5, only set once watched
	Review      *string     `db:"review"`
	UserID      uuid.UUID   `db:"user_id"`
}

// Watched reports whether the movie has been marked watched.
func (m *Movie) Watched() bool {
	return m.Status == StatusWatched
}
