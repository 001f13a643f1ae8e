package repository

import (
	"movielist/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Movie   MovieRepository
	Like    LikeRepository
	Comment CommentRepository
	Follow  FollowRepository
	Badge   BadgeRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Like:    NewLikeRepository(db, log),
		Comment: NewCommentRepository(db, log),
		Follow:  NewFollowRepository(db, log),
		Badge:   NewBadgeRepository(db, log),
	}
}
