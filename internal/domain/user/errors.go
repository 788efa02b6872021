package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("user already exists with this email")
	ErrEmailInUse              = errors.New("email already in use")
	ErrSelfDeletionForbidden   = errors.New("cannot delete your own account")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
