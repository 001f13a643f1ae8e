package usecase

import (
	"context"
	"sort"

	"movielist/internal/data/entity"
	"movielist/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repositories backing the service tests. Each fake keeps the
// same contract as its SQL counterpart: FindBy* returns (nil, nil) on a
// miss, Create/Delete on conflict tables report a bool.

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:    &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
		Movie:   &fakeMovieRepo{movies: map[uuid.UUID]*entity.Movie{}},
		Like:    &fakeLikeRepo{likes: map[likeKey]bool{}},
		Comment: &fakeCommentRepo{comments: map[uuid.UUID]*entity.Comment{}},
		Follow:  &fakeFollowRepo{edges: map[followKey]bool{}},
		Badge:   &fakeBadgeRepo{badges: map[uuid.UUID][]string{}},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// ---------- users ----------

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range ids {
		if u := f.users[id]; u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

// ---------- movies ----------

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.movies, id)
	return nil
}

func (f *fakeMovieRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	return f.filter(func(m *entity.Movie) bool { return m.UserID == userID }), nil
}

func (f *fakeMovieRepo) FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status entity.MovieStatus) ([]*entity.Movie, error) {
	return f.filter(func(m *entity.Movie) bool {
		return m.UserID == userID && m.Status == status
	}), nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return f.filter(func(*entity.Movie) bool { return true }), nil
}

func (f *fakeMovieRepo) CountWatchedByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, m := range f.movies {
		if m.UserID == userID && m.Watched() {
			count++
		}
	}
	return count, nil
}

func (f *fakeMovieRepo) SumWatchTimeByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	for _, m := range f.movies {
		if m.UserID == userID && m.Watched() && m.Runtime != nil {
			total += int64(*m.Runtime)
		}
	}
	return total, nil
}

func (f *fakeMovieRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.movies)), nil
}

func (f *fakeMovieRepo) filter(keep func(*entity.Movie) bool) []*entity.Movie {
	var out []*entity.Movie
	for _, m := range f.movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// ---------- likes ----------

type likeKey struct {
	userID  uuid.UUID
	movieID uuid.UUID
}

type fakeLikeRepo struct {
	likes map[likeKey]bool
}

func (f *fakeLikeRepo) Create(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	key := likeKey{userID, movieID}
	if f.likes[key] {
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}

func (f *fakeLikeRepo) Delete(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	key := likeKey{userID, movieID}
	if !f.likes[key] {
		return false, nil
	}
	delete(f.likes, key)
	return true, nil
}

func (f *fakeLikeRepo) CountByMovie(ctx context.Context, movieID uuid.UUID) (int64, error) {
	var count int64
	for key := range f.likes {
		if key.movieID == movieID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for key := range f.likes {
		if key.userID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.likes)), nil
}

func (f *fakeLikeRepo) MovieIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for key := range f.likes {
		if key.userID == userID {
			out = append(out, key.movieID)
		}
	}
	return out, nil
}

// ---------- comments ----------

type fakeCommentRepo struct {
	comments map[uuid.UUID]*entity.Comment
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	return f.comments[id], nil
}

func (f *fakeCommentRepo) FindByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range f.comments {
		if c.MovieID == movieID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) CountByMovie(ctx context.Context, movieID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.MovieID == movieID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range f.comments {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCommentRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.comments)), nil
}

// ---------- follows ----------

type followKey struct {
	followerID  uuid.UUID
	followingID uuid.UUID
}

type fakeFollowRepo struct {
	edges map[followKey]bool
}

func (f *fakeFollowRepo) Create(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	key := followKey{followerID, followingID}
	if f.edges[key] {
		return false, nil
	}
	f.edges[key] = true
	return true, nil
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	key := followKey{followerID, followingID}
	if !f.edges[key] {
		return false, nil
	}
	delete(f.edges, key)
	return true, nil
}

func (f *fakeFollowRepo) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	return f.edges[followKey{followerID, followingID}], nil
}

func (f *fakeFollowRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for key := range f.edges {
		if key.followingID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollowRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for key := range f.edges {
		if key.followerID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollowRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.edges)), nil
}

func (f *fakeFollowRepo) FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for key := range f.edges {
		if key.followingID == userID {
			out = append(out, key.followerID)
		}
	}
	return out, nil
}

func (f *fakeFollowRepo) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for key := range f.edges {
		if key.followerID == userID {
			out = append(out, key.followingID)
		}
	}
	return out, nil
}

// ---------- badges ----------

type fakeBadgeRepo struct {
	badges map[uuid.UUID][]string
}

func (f *fakeBadgeRepo) Award(ctx context.Context, userID uuid.UUID, badgeName string) (bool, error) {
	for _, name := range f.badges[userID] {
		if name == badgeName {
			return false, nil
		}
	}
	f.badges[userID] = append(f.badges[userID], badgeName)
	return true, nil
}

func (f *fakeBadgeRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error) {
	names := f.badges[userID]
	out := make([]*entity.Badge, len(names))
	for i, name := range names {
		out[i] = &entity.Badge{UserID: userID, BadgeName: name}
	}
	return out, nil
}
