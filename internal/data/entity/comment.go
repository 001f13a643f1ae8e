package entity

import (
	"github.com/google/uuid"
)

type Comment struct {
	BaseSimple
	Content string    `db:"content"`
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
}
