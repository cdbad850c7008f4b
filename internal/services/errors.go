package services

import "errors"

var (
	ErrValidation          = errors.New("all fields are required")
	ErrConflict            = errors.New("email already exists")
	ErrBadCreds            = errors.New("invalid credentials")
	ErrUnauthenticated     = errors.New("authorization header missing or malformed")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrNotFoundOrForbidden = errors.New("note not found or not authorized")
)
