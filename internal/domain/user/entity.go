package user

import "time"

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash *string // nil for OAuth-only accounts
	GoogleID     *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
