package models

import "errors"

// Account service errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrKeyNotFound        = errors.New("api key not found")
	ErrKeyAlreadyDeleted  = errors.New("api key already deleted")
	ErrActiveKeyExists    = errors.New("an active api key already exists")
)
