package user

import "time"

type UserDB struct {
	ID            int64
	Email         string
	Phone         string
	FullName      string
	PasswordHash  string
	Role          string
	PushToken     *string
	EmailVerified bool
	GoogleID      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
