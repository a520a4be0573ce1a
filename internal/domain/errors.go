package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Inventory errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"

	// Game configuration errors
	ErrMsgInvalidDifficulty = "invalid difficulty"
	ErrMsgDifficultyNotSet  = "difficulty not set"

	// Content pool errors
	ErrMsgEmptyMobPool  = "mob pool is empty"
	ErrMsgEmptyItemPool = "item pool is empty"

	// Content catalog errors
	ErrMsgInvalidCatalog = "invalid catalog"

	// Input errors
	ErrMsgInvalidMenuChoice = "invalid menu choice"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Inventory errors
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)

	// Game configuration errors
	ErrInvalidDifficulty = errors.New(ErrMsgInvalidDifficulty)
	ErrDifficultyNotSet  = errors.New(ErrMsgDifficultyNotSet)

	// Content pool errors
	ErrEmptyMobPool  = errors.New(ErrMsgEmptyMobPool)
	ErrEmptyItemPool = errors.New(ErrMsgEmptyItemPool)

	// Content catalog errors
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// Input errors
	ErrInvalidMenuChoice = errors.New(ErrMsgInvalidMenuChoice)
)
