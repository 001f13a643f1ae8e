package usecase

import (
	"context"
	"testing"

	"movielist/internal/data/entity"
	"movielist/internal/dto/request"
	"movielist/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("like then duplicate conflicts", func(t *testing.T) {
		repo := newTestRepo()
		user := seedUser(t, repo, "alice")
		movie := seedMovie(t, repo, user.ID, "Inception", entity.StatusWatched, nil)
		svc := NewSocialService(repo, testLogger())

		require.NoError(t, svc.LikeMovie(ctx, movie.ID.String(), user.ID))

		err := svc.LikeMovie(ctx, movie.ID.String(), user.ID)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("unlike without a like conflicts", func(t *testing.T) {
		repo := newTestRepo()
		user := seedUser(t, repo, "alice")
		movie := seedMovie(t, repo, user.ID, "Inception", entity.StatusWatched, nil)
		svc := NewSocialService(repo, testLogger())

		err := svc.UnlikeMovie(ctx, movie.ID.String(), user.ID)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("like unlike roundtrip", func(t *testing.T) {
		repo := newTestRepo()
		user := seedUser(t, repo, "alice")
		movie := seedMovie(t, repo, user.ID, "Inception", entity.StatusWatched, nil)
		svc := NewSocialService(repo, testLogger())

		require.NoError(t, svc.LikeMovie(ctx, movie.ID.String(), user.ID))
		require.NoError(t, svc.UnlikeMovie(ctx, movie.ID.String(), user.ID))

		liked, err := svc.GetUserLikedMovies(ctx, user.ID.String())
		require.NoError(t, err)
		assert.Empty(t, liked)
	})

	t.Run("unknown movie is not found", func(t *testing.T) {
		repo := newTestRepo()
		user := seedUser(t, repo, "alice")
		svc := NewSocialService(repo, testLogger())

		err := svc.LikeMovie(ctx, "7b0d1a3e-0000-4000-8000-000000000000", user.ID)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestComments(t *testing.T) {
	ctx := context.Background()

	t.Run("add and list", func(t *testing.T) {
		repo := newTestRepo()
		user := seedUser(t, repo, "alice")
		movie := seedMovie(t, repo, user.ID, "Inception", entity.StatusWatched, nil)
		svc := NewSocialService(repo, testLogger())

		added, err := svc.AddComment(ctx, movie.ID.String(), user, &request.CommentRequest{Content: "Loved it"})
		require.NoError(t, err)
		assert.Equal(t, "Loved it", added.Content)
		assert.Equal(t, "alice", added.Username)
		assert.Equal(t, "Inception", added.MovieTitle)

		comments, err := svc.GetMovieComments(ctx, movie.ID.String())
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, added.ID, comments[0].ID)
	})

	t.Run("empty content is invalid", func(t *testing.T) {
		repo := newTestRepo()
		user := seedUser(t, repo, "alice")
		movie := seedMovie(t, repo, user.ID, "Inception", entity.StatusWatched, nil)
		svc := NewSocialService(repo, testLogger())

		_, err := svc.AddComment(ctx, movie.ID.String(), user, &request.CommentRequest{})
		assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	})

	t.Run("owner can delete", func(t *testing.T) {
		repo := newTestRepo()
		user := seedUser(t, repo, "alice")
		movie := seedMovie(t, repo, user.ID, "Inception", entity.StatusWatched, nil)
		svc := NewSocialService(repo, testLogger())

		added, err := svc.AddComment(ctx, movie.ID.String(), user, &request.CommentRequest{Content: "Loved it"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteComment(ctx, added.ID, user))

		comments, err := svc.GetMovieComments(ctx, movie.ID.String())
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("stranger cannot delete, admin can", func(t *testing.T) {
		repo := newTestRepo()
		author := seedUser(t, repo, "alice")
		stranger := seedUser(t, repo, "bob")
		admin := seedUser(t, repo, "root")
		admin.Role = entity.RoleAdmin
		movie := seedMovie(t, repo, author.ID, "Inception", entity.StatusWatched, nil)
		svc := NewSocialService(repo, testLogger())

		added, err := svc.AddComment(ctx, movie.ID.String(), author, &request.CommentRequest{Content: "Loved it"})
		require.NoError(t, err)

		err = svc.DeleteComment(ctx, added.ID, stranger)
		assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))

		require.NoError(t, svc.DeleteComment(ctx, added.ID, admin))
	})
}
