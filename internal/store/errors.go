package store

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrOwnershipMismatch   = errors.New("record belongs to another user")
	ErrUserExists          = errors.New("username already exists")
	ErrConstraintViolation = errors.New("database constraint violation")
)
