package auth

import "errors"

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPhone    = errors.New("invalid phone")
	ErrInvalidName     = errors.New("invalid name")
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
	ErrInvalidUserID   = errors.New("invalid user id")

	ErrEmailTaken         = errors.New("account already exists for this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidGoogleToken = errors.New("invalid google id token")
	ErrUserNotFound       = errors.New("user not found")
)
