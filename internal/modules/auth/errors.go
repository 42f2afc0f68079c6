package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrPersistence        = errors.New("failed to create user in database")
)
