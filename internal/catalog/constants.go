package catalog

// Record file layout
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"

	// ScanSkipDir is the asset sub-directory that holds code, not records
	ScanSkipDir = "classes"

	ScanStatusSuccess = "success"

	// MaterialNameKey and MaterialKey are read from material records for the scan listing
	MaterialNameKey = "name"
	MaterialKey     = "material"
)

// Asset server routes used by HTTPSource
const (
	ScanItemsPath     = "/api/scan-items"
	RecordsPathPrefix = "/api/records/"
	CategoryParam     = "category"

	// MaxRecordBytes caps the size of one record read over HTTP
	MaxRecordBytes = 1 << 20
)

// Error message formats
const (
	ErrFmtInvalidName     = "%w: invalid name %q"
	ErrFmtUnsupportedFile = "%w: unsupported record file %q"
	ErrFmtListFailed      = "failed to list %s: %w"
	ErrFmtReadFailed      = "failed to read %s/%s: %w"
	ErrFmtDecodeFailed    = "%w: %s/%s: %v"
	ErrFmtSchemaFailed    = "%s/%s: %w"
	ErrFmtUnexpectedCode  = "asset server returned %d for %s"
	ErrFmtSyncFailed      = "failed to %s %s/%s: %w"
	ErrMsgLoadExisting    = "failed to load existing records: %w"
)

// Log messages
const (
	LogMsgLoadRecordFailed   = "Failed to load item record"
	LogMsgListFailed         = "Could not list item files for category"
	LogMsgCategoryLoaded     = "Loaded item category"
	LogMsgAllLoaded          = "Loaded all item categories"
	LogMsgScanMaterialFailed = "Failed to read material record during scan"
	LogMsgCacheInvalidated   = "Item cache invalidated"
	LogMsgSyncItemRejected   = "Item record rejected during sync"
	LogMsgSyncInserted       = "Inserted item record"
	LogMsgSyncUpdated        = "Updated item record"
	LogMsgSyncCompleted      = "Item record sync completed"
	LogMsgSyncDuplicateID    = "Duplicate item id during sync"
)
