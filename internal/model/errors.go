package model

import "errors"

// Common errors used across the application
var (
	// Validation errors (rejected before any state mutation)
	ErrEmptyName      = errors.New("player name is empty")
	ErrInvalidPayment = errors.New("invalid payment method")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerOnCourt  = errors.New("player is currently on a court")

	// Court errors
	ErrCourtNotFound    = errors.New("court not found")
	ErrCourtLimit       = errors.New("court limit reached")
	ErrCourtNotFull     = errors.New("court is not full")
	ErrCourtCoolingDown = errors.New("court game was just completed")

	// Swap errors
	ErrInvalidPosition = errors.New("invalid or stale position")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptySnapshot   = errors.New("snapshot holds no saved state")
)
