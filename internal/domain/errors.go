package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Giveaway errors
	ErrMsgGiveawayNotFound    = "giveaway not found"
	ErrMsgGiveawayEnded       = "giveaway has ended"
	ErrMsgGiveawayStillActive = "giveaway is still active"
	ErrMsgAlreadyEntered      = "already entered this giveaway"
	ErrMsgWrongGuild          = "giveaway belongs to another guild"
	ErrMsgNoEligibleEntrants  = "no eligible entrants"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Validation errors (used for partial matches)
	ErrMsgInvalidDuration    = "duration must be between"
	ErrMsgInvalidWinnerCount = "winner count must be between"
	ErrMsgInvalidXPParams    = "invalid xp parameters"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Giveaway errors
	ErrGiveawayNotFound    = errors.New(ErrMsgGiveawayNotFound)
	ErrGiveawayEnded       = errors.New(ErrMsgGiveawayEnded)
	ErrGiveawayStillActive = errors.New(ErrMsgGiveawayStillActive)
	ErrAlreadyEntered      = errors.New(ErrMsgAlreadyEntered)
	ErrWrongGuild          = errors.New(ErrMsgWrongGuild)
	ErrNoEligibleEntrants  = errors.New(ErrMsgNoEligibleEntrants)

	// Settings errors
	ErrInvalidXPParams = errors.New(ErrMsgInvalidXPParams)

	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)
)
