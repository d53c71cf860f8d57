package notification

import "errors"

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidTitle     = errors.New("invalid notification title")
	ErrInvalidMessage   = errors.New("invalid notification message")
	ErrInvalidType      = errors.New("invalid notification type")
	ErrInvalidPushToken = errors.New("invalid push token")
	ErrEmptyIDList      = errors.New("notification id list is empty")

	ErrNoAdmins = errors.New("no administrators found")
)
