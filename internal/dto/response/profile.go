package response

type UserProfileResponse struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	FavoriteGenre      *string  `json:"favoriteGenre,omitempty"`
	ProfilePictureURL  *string  `json:"profilePictureUrl,omitempty"`
	Role               string   `json:"role"`
	MoviesWatchedCount int64    `json:"moviesWatchedCount"`
	TotalWatchTime     int64    `json:"totalWatchTime"`
	FollowersCount     int64    `json:"followersCount"`
	FollowingCount     int64    `json:"followingCount"`
	Badges             []string `json:"badges"`
	IsFollowing        bool     `json:"isFollowing"`
}
