package model

import "errors"

var (
	// Account related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors
	ErrInvalidToken = errors.New("invalid token")

	// Permission/Access related errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Resource related errors
	ErrAvatarNotFound = errors.New("avatar not found")
	ErrSpaceNotFound  = errors.New("space not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
