package request

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	ReleaseYear *int    `json:"releaseYear,omitempty" validate:"omitempty,gte=1888"`
	Runtime     *int    `json:"runtime,omitempty" validate:"omitempty,gte=0"`
	PosterURL   *string `json:"posterUrl,omitempty" validate:"omitempty,url"`
	Rating      *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Review      *string `json:"review,omitempty" validate:"omitempty,max=1000"`
}
