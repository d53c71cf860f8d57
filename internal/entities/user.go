package entities

import "time"

type User struct {
	ID            int64
	Email         string
	Phone         string
	FullName      string
	PasswordHash  string
	Role          UserRoleType
	PushToken     string
	EmailVerified bool
	GoogleID      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type UserRoleType string

const (
	RoleClient UserRoleType = "client"
	RoleAdmin  UserRoleType = "admin"
)

func (r UserRoleType) String() string {
	return string(r)
}

// GoogleProfile - проверенный профиль из ID-токена Google.
type GoogleProfile struct {
	Subject       string
	Email         string
	FullName      string
	EmailVerified bool
}

type UserModify struct {
	ID            *int64
	Email         *string
	Phone         *string
	FullName      *string
	PasswordHash  *string
	Role          *UserRoleType
	PushToken     *string
	EmailVerified *bool
	GoogleID      *string
}
