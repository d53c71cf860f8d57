package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidCollection     = errors.New("invalid courier collection")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidTransport      = errors.New("invalid transport type")
	ErrMissingDocuments      = errors.New("missing application documents")
	ErrEmptyFile             = errors.New("empty file")

	ErrCourierNotFound = errors.New("courier not found")
	ErrConflict        = errors.New("resource already exists")
)
