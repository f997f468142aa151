package model

import "errors"

// Validation and auth errors. Handlers map these to HTTP statuses;
// error text is what the client sees.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")
	ErrInvalidYear        = errors.New("year of study must be a number between 1 and 10")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStudentNotFound    = errors.New("student not found")
)

// Token errors.
var (
	ErrMissingSecret = errors.New("session secret key is not configured")
	ErrMissingClaims = errors.New("claims must contain user id and email")
)
