package errorvalues

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrEmailTaken       = errors.New("email is already in use")
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrWrongCredentials = errors.New("wrong username or password")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrWrongOwner    = errors.New("habit has different owner")

	ErrLogExists         = errors.New("habit is already tracked for that date")
	ErrLogNotFound       = errors.New("no log for that date")
	ErrLogDateNotAllowed = errors.New("tracking future dates is not allowed")

	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrMalformedClaims = errors.New("token claims are malformed")
)
