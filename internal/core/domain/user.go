package domain

// User - профиль пользователя, как его отдает remote API.
type User struct {
	ID                string
	FullName          *string
	Phone             *string
	ProfilePictureURL *string
	Role              string
	CreatedAt         string
	UpdatedAt         string
}

// TokenPair - пара токенов после login/refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}
