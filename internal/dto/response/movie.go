package response

import (
	"movielist/internal/data/entity"
)

type MovieResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Genre         *string `json:"genre,omitempty"`
	ReleaseYear   *int    `json:"releaseYear,omitempty"`
	Runtime       *int    `json:"runtime,omitempty"`
	PosterURL     *string `json:"posterUrl,omitempty"`
	Status        string  `json:"status"`
	Rating        *int    `json:"rating,omitempty"`
	Review        *string `json:"review,omitempty"`
	UserID        string  `json:"userId"`
	Username      string  `json:"username"`
	LikesCount    int64   `json:"likesCount"`
	CommentsCount int64   `json:"commentsCount"`
}

// MovieToResponse embeds the owner's username and the movie's social
// counters alongside the row itself.
func MovieToResponse(movie *entity.Movie, username string, likes, comments int64) MovieResponse {
	return MovieResponse{
		ID:            movie.ID.String(),
		Title:         movie.Title,
		Genre:         movie.Genre,
		ReleaseYear:   movie.ReleaseYear,
		Runtime:       movie.Runtime,
		PosterURL:     movie.PosterURL,
		Status:        string(movie.Status),
		Rating:        movie.Rating,
		Review:        movie.Review,
		UserID:        movie.UserID.String(),
		Username:      username,
		LikesCount:    likes,
		CommentsCount: comments,
	}
}
