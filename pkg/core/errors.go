package core

import "errors"

// Common errors.
var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPhone    = errors.New("invalid phone number format")
	ErrNotFound        = errors.New("contact not found")
	ErrIndexOutOfRange = errors.New("note index out of range")
	ErrMalformed       = errors.New("malformed collection file")
	ErrInvalidBirthday = errors.New("invalid birthday date")
)
