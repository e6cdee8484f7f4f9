package utils

import "errors"

var (
	// Completion pipeline
	ErrNoResponse        = errors.New("completion service returned no response")
	ErrMalformedResponse = errors.New("completion response could not be parsed")

	// Persistence
	ErrStorageUnavailable = errors.New("persistent storage is not configured")
	ErrTripNotFound       = errors.New("trip not found")
	ErrDatabaseError      = errors.New("database error")

	// Accounts
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")

	// Input
	ErrInvalidInput = errors.New("invalid input")
)
