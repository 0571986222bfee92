package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrCoachNotFound = errors.New("coach not found")
	ErrEmailTaken    = errors.New("email already in use")

	// Location errors
	ErrLocationNotFound = errors.New("location not found")

	// Game errors
	ErrGameNotFound = errors.New("game not found")

	// Score errors
	ErrScoreNotFound = errors.New("score not found")
)
