package request

type ProfileUpdateRequest struct {
	FavoriteGenre     *string `json:"favoriteGenre,omitempty" validate:"omitempty,max=100"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty" validate:"omitempty,url"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Password          *string `json:"password,omitempty" validate:"omitempty,min=4"`
}
