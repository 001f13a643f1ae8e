package response

import (
	"time"

	"movielist/internal/data/entity"
)

type CommentResponse struct {
	ID                    string    `json:"id"`
	Content               string    `json:"content"`
	CreatedAt             time.Time `json:"createdAt"`
	UserID                string    `json:"userId"`
	Username              string    `json:"username"`
	UserProfilePictureURL *string   `json:"userProfilePictureUrl,omitempty"`
	MovieID               string    `json:"movieId"`
	MovieTitle            string    `json:"movieTitle"`
}

func CommentToResponse(comment *entity.Comment, author *entity.User, movieTitle string) CommentResponse {
	resp := CommentResponse{
		ID:         comment.ID.String(),
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
		UserID:     comment.UserID.String(),
		MovieID:    comment.MovieID.String(),
		MovieTitle: movieTitle,
	}
	if author != nil {
		resp.Username = author.Username
		resp.UserProfilePictureURL = author.ProfilePictureURL
	}
	return resp
}
