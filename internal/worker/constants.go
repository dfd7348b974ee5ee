package worker

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgWorkerQueueFull    = "Worker queue full, job dropped"
)

// Log messages for the item jobs
const (
	LogMsgCacheWarmed   = "Item cache warmed"
	LogMsgWarmSkipped   = "Could not warm item category"
	LogMsgSyncJobResult = "Scheduled item sync finished"
)

// Job names, also used as metric labels
const (
	JobNameSync      = "sync_records"
	JobNameWarmCache = "warm_cache"
)
