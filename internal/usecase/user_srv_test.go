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

func TestGetOrCreateDefaultUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	svc := NewUserService(repo, testLogger())

	first, err := svc.GetOrCreateDefaultUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultUsername, first.Username)
	assert.Equal(t, entity.RoleUser, first.Role)

	second, err := svc.GetOrCreateDefaultUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestFollowUser(t *testing.T) {
	ctx := context.Background()

	t.Run("follow then duplicate conflicts", func(t *testing.T) {
		repo := newTestRepo()
		alice := seedUser(t, repo, "alice")
		seedUser(t, repo, "bob")
		svc := NewUserService(repo, testLogger())

		require.NoError(t, svc.FollowUser(ctx, alice, "bob"))

		err := svc.FollowUser(ctx, alice, "bob")
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("self follow is invalid", func(t *testing.T) {
		repo := newTestRepo()
		alice := seedUser(t, repo, "alice")
		svc := NewUserService(repo, testLogger())

		err := svc.FollowUser(ctx, alice, "alice")
		assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	})

	t.Run("unknown target is not found", func(t *testing.T) {
		repo := newTestRepo()
		alice := seedUser(t, repo, "alice")
		svc := NewUserService(repo, testLogger())

		err := svc.FollowUser(ctx, alice, "ghost")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("unfollow without edge conflicts", func(t *testing.T) {
		repo := newTestRepo()
		alice := seedUser(t, repo, "alice")
		seedUser(t, repo, "bob")
		svc := NewUserService(repo, testLogger())

		err := svc.UnfollowUser(ctx, alice, "bob")
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("followers and following reflect edges", func(t *testing.T) {
		repo := newTestRepo()
		alice := seedUser(t, repo, "alice")
		bob := seedUser(t, repo, "bob")
		svc := NewUserService(repo, testLogger())

		require.NoError(t, svc.FollowUser(ctx, alice, "bob"))
		require.NoError(t, svc.FollowUser(ctx, bob, "alice"))

		followers, err := svc.GetFollowers(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, "alice", followers[0].Username)

		following, err := svc.GetFollowing(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, following, 1)
		assert.Equal(t, "alice", following[0].Username)
	})
}

func TestGetUserProfile(t *testing.T) {
	ctx := context.Background()

	repo := newTestRepo()
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	seedMovie(t, repo, bob.ID, "Heat", entity.StatusWatched, intPtr(170))
	seedMovie(t, repo, bob.ID, "Dune", entity.StatusWishlist, intPtr(155))
	svc := NewUserService(repo, testLogger())

	require.NoError(t, svc.FollowUser(ctx, alice, "bob"))

	t.Run("counts and follow state for a viewer", func(t *testing.T) {
		profile, err := svc.GetUserProfile(ctx, "bob", alice)
		require.NoError(t, err)

		assert.Equal(t, int64(1), profile.MoviesWatchedCount)
		assert.Equal(t, int64(170), profile.TotalWatchTime)
		assert.Equal(t, int64(1), profile.FollowersCount)
		assert.True(t, profile.IsFollowing)
	})

	t.Run("own profile never reports following", func(t *testing.T) {
		profile, err := svc.GetUserProfile(ctx, "bob", bob)
		require.NoError(t, err)
		assert.False(t, profile.IsFollowing)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		_, err := svc.GetUserProfile(ctx, "ghost", nil)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestGetLeaderboard(t *testing.T) {
	ctx := context.Background()

	repo := newTestRepo()
	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	seedUser(t, repo, "carol")

	seedMovie(t, repo, alice.ID, "Heat", entity.StatusWatched, nil)
	seedMovie(t, repo, bob.ID, "Dune", entity.StatusWatched, nil)
	seedMovie(t, repo, bob.ID, "Tenet", entity.StatusWatched, nil)

	svc := NewUserService(repo, testLogger())

	leaderboard, err := svc.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, leaderboard, 3)

	assert.Equal(t, "bob", leaderboard[0].Username)
	assert.Equal(t, int64(2), leaderboard[0].WatchedCount)
	assert.Equal(t, "alice", leaderboard[1].Username)
	assert.Equal(t, int64(0), leaderboard[2].WatchedCount)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	repo := newTestRepo()
	alice := seedUser(t, repo, "alice")
	svc := NewUserService(repo, testLogger())

	profile, err := svc.UpdateProfile(ctx, alice, &request.ProfileUpdateRequest{
		FavoriteGenre: strPtr("Sci-Fi"),
	})
	require.NoError(t, err)
	require.NotNil(t, profile.FavoriteGenre)
	assert.Equal(t, "Sci-Fi", *profile.FavoriteGenre)
}
