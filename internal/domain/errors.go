package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgCharacterExists   = "character already exists"
	ErrMsgUnknownClass      = "unknown character class"

	// Game state errors
	ErrMsgGameStateNotFound = "game state not found"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInventoryFull        = "carry weight exceeded"
	ErrMsgInsufficientFunds    = "insufficient gold"
	ErrMsgNotEquippable        = "item is not equippable"
	ErrMsgRequirementsNotMet   = "requirements not met"

	// World errors
	ErrMsgLocationNotFound = "location not found"
	ErrMsgNPCNotFound      = "npc not found"
	ErrMsgEnemyNotFound    = "enemy not found"
	ErrMsgNoConnection     = "no connection between locations"

	// Quest errors
	ErrMsgQuestNotFound     = "quest not found"
	ErrMsgQuestNotAvailable = "quest not available"

	// AI errors
	ErrMsgAIUnavailable = "ai provider unavailable"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrCharacterExists   = errors.New(ErrMsgCharacterExists)
	ErrUnknownClass      = errors.New(ErrMsgUnknownClass)

	// Game state errors
	ErrGameStateNotFound = errors.New(ErrMsgGameStateNotFound)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInventoryFull        = errors.New(ErrMsgInventoryFull)
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrNotEquippable        = errors.New(ErrMsgNotEquippable)
	ErrRequirementsNotMet   = errors.New(ErrMsgRequirementsNotMet)

	// World errors
	ErrLocationNotFound = errors.New(ErrMsgLocationNotFound)
	ErrNPCNotFound      = errors.New(ErrMsgNPCNotFound)
	ErrEnemyNotFound    = errors.New(ErrMsgEnemyNotFound)
	ErrNoConnection     = errors.New(ErrMsgNoConnection)

	// Quest errors
	ErrQuestNotFound     = errors.New(ErrMsgQuestNotFound)
	ErrQuestNotAvailable = errors.New(ErrMsgQuestNotAvailable)

	// AI errors
	ErrAIUnavailable = errors.New(ErrMsgAIUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
