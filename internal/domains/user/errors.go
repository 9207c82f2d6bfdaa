package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)
