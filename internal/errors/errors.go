package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token invalidated")

	ErrTodoNotFound    = errors.New("todo not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidPriority = errors.New("invalid priority value")
)
