package postgres

// Error Messages - Database Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToInsertUser       = "failed to insert user"
	ErrMsgFailedToGetUser          = "failed to get user"
	ErrMsgFailedToInsertCharacter  = "failed to insert character"
	ErrMsgFailedToGetCharacter     = "failed to get character"
	ErrMsgFailedToListCharacters   = "failed to list characters"
	ErrMsgFailedToUpdateCharacter  = "failed to update character"
	ErrMsgFailedToDeleteCharacter  = "failed to delete character"
	ErrMsgFailedToInsertGameState  = "failed to insert game state"
	ErrMsgFailedToGetGameState     = "failed to get game state"
	ErrMsgFailedToUpdateGameState  = "failed to update game state"
	ErrMsgFailedToDeleteGameState  = "failed to delete game state"
	ErrMsgFailedToMarshalState     = "failed to marshal game state"
	ErrMsgFailedToInsertImage      = "failed to insert game image"
	ErrMsgFailedToListImages       = "failed to list game images"
	ErrMsgFailedToInsertAudio      = "failed to insert character audio"
	ErrMsgFailedToListAudio        = "failed to list character audio"
)

// Log Messages
const (
	LogMsgStateBlobMalformed = "malformed game state document, field reset"
)
