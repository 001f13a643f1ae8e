package entity

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	BaseNoDelete
	Username          string   `db:"username"`
	Email             string   `db:"email"`
	PasswordHash      string   `db:"password_hash"`
	FavoriteGenre     *string  `db:"favorite_genre"`
	ProfilePictureURL *string  `db:"profile_picture_url"`
	Role              UserRole `db:"role"`
}
