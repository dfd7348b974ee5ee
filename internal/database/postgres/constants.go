package postgres

// Error Messages - Item Record Operations
const (
	ErrMsgFailedToGetRecords   = "failed to get item records"
	ErrMsgFailedToGetRecord    = "failed to get item record"
	ErrMsgFailedToScanRecord   = "failed to scan item record"
	ErrMsgFailedToEncodeRecord = "failed to encode item record"
	ErrMsgFailedToInsertRecord = "failed to insert item record"
	ErrMsgFailedToUpdateRecord = "failed to update item record"
	ErrMsgFailedToDeleteRecord = "failed to delete item record"
)

// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
const PgErrorCodeUniqueViolation = "23505"
