package item

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

// These format strings are used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty    = "%w: item at index %d has empty internal_name"
	ErrFmtItemHasEmptyName    = "%w: item '%s' has empty name"
	ErrFmtItemNegativeValue   = "%w: item '%s' has negative value"
	ErrFmtItemNegativeWeight  = "%w: item '%s' has negative weight"
	ErrFmtItemUnknownCategory = "%w: item '%s' has unknown category '%s'"
)
