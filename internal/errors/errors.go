// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account temporarily locked, try again later")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("insufficient role for this operation")
)

// Trip errors
var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrTripCodeTaken = errors.New("trip with this code already exists")
)

// Rate limit errors
var (
	ErrRateLimited = errors.New("too many requests, please try again later")
)
