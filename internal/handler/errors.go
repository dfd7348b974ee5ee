package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidSortKey    = "Invalid sort_by '%s'. Valid options: %s"

	// Asset error messages
	ErrMsgScanFailed       = "Failed to scan item assets"
	ErrMsgListItemsFailed  = "Failed to list items"
	ErrMsgGetRecordFailed  = "Failed to read item record"
	ErrMsgGetItemFailed    = "Failed to load item"
	ErrMsgCompareFailed    = "Failed to compare items"
	ErrMsgUseItemFailed    = "Failed to use item"
	ErrMsgItemNotUsable    = "Only potions and quest items can be used"

	// Admin error messages
	ErrMsgSyncFailed = "Failed to sync item records"
)

// Success messages for API responses
const (
	MsgCacheInvalidated = "Item cache invalidated"
	MsgSyncCompleted    = "Item records synced"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode %s request"
	LogMsgRequestDecoded  = "%s request decoded"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgItemUsed        = "Item used"
	LogMsgServiceError    = "%s failed"
)
