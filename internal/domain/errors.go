package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgItemNotFound     = "item not found"
	ErrMsgRecordNotFound   = "item record not found"
	ErrMsgInvalidCategory  = "invalid item category"
	ErrMsgMalformedRecord  = "malformed item record"
	ErrMsgUnsupportedUse   = "item cannot be used"
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgStoreUnavailable = "item store not configured"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrRecordNotFound   = errors.New(ErrMsgRecordNotFound)
	ErrInvalidCategory  = errors.New(ErrMsgInvalidCategory)
	ErrMalformedRecord  = errors.New(ErrMsgMalformedRecord)
	ErrUnsupportedUse   = errors.New(ErrMsgUnsupportedUse)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)
