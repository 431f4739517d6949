package character

// ====================
// Error messages
// ====================

const (
	ErrMsgEmptyName = "empty character name"
)

// ====================
// Log messages
// ====================

const (
	LogMsgCharacterCreated = "character created"
	LogMsgCharacterDeleted = "character deleted"
	LogMsgSessionSaved     = "session saved"

	LogMsgEventPublishFailed = "event publish failed"
)
