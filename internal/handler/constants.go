package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s path parameter"

	// User operation error messages
	ErrMsgCreateUserFailed = "Failed to create user"
	ErrMsgGetUserFailed    = "Failed to get user"

	// Character operation error messages
	ErrMsgCreateCharacterFailed = "Failed to create character"
	ErrMsgListCharactersFailed  = "Failed to list characters"
	ErrMsgGetSessionFailed      = "Failed to load game session"
	ErrMsgDeleteCharacterFailed = "Failed to delete character"

	// Command operation error messages
	ErrMsgSaveSessionFailed = "Failed to save game session"

	// Media operation error messages
	ErrMsgListImagesFailed = "Failed to list images"
	ErrMsgListAudioFailed  = "Failed to list narrations"
)

// User-facing error messages mapped from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgCharacterExistsError   = "You already have a character with that name"
	ErrMsgUnknownClassError      = "Unknown character class"
	ErrMsgSessionNotFoundError   = "Game session not found"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
	ErrMsgAIUnavailableError     = "The storyteller is resting. Please try again later."
)

// Log messages
const (
	LogMsgUserCreated      = "User created"
	LogMsgCharacterCreated = "Character created"
	LogMsgCharacterDeleted = "Character deleted"
	LogMsgCommandHandled   = "Command handled"
	LogMsgImageSaveFailed  = "Failed to persist generated image"
	LogMsgAudioSaveFailed  = "Failed to persist generated narration"
	LogMsgImageGenFailed   = "Image generation failed"
	LogMsgSpeechGenFailed  = "Speech generation failed"
)

// Media listing defaults
const (
	DefaultMediaLimit = 10
	MaxMediaLimit     = 100
)
