package entity

import "errors"

var (
	// User errors
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Event errors
	ErrEventNotFound = errors.New("event not found")

	// Registration errors
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrPaymentProofMissing  = errors.New("payment proof file is required")
	ErrInvalidFileType      = errors.New("invalid file type")

	// General errors
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden operation")
)
