package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role specified")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrInactiveAccount    = errors.New("inactive user")
	ErrInsufficientRole   = errors.New("insufficient privileges")
	ErrNoFieldsToUpdate   = errors.New("no update data provided")
)
