package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Item model metric names
const (
	MetricNameItemsCreated        = "itemforge_items_created_total"
	MetricNameItemCreateFailures  = "itemforge_item_create_failures_total"
	MetricNameUnknownEffects      = "itemforge_unknown_effects_total"
	MetricNameItemsUsed           = "itemforge_items_used_total"
	MetricNameCategoryLoads       = "itemforge_category_loads_total"
	MetricNameCategoryLoadSeconds = "itemforge_category_load_duration_seconds"
	MetricNameCacheLookups        = "itemforge_cache_lookups_total"
	MetricNameSyncedRecords       = "itemforge_synced_records_total"
	MetricNameJobRuns             = "itemforge_job_runs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Item model metric help text
const (
	HelpTextItemsCreated        = "Total number of items constructed by the factory"
	HelpTextItemCreateFailures  = "Total number of item records the factory rejected"
	HelpTextUnknownEffects      = "Total number of effects or triggers with an unregistered type"
	HelpTextItemsUsed           = "Total number of simulated item uses"
	HelpTextCategoryLoads       = "Total number of category loads from an item source"
	HelpTextCategoryLoadSeconds = "Time spent loading one item category in seconds"
	HelpTextCacheLookups        = "Total number of category cache lookups"
	HelpTextSyncedRecords       = "Total number of item records processed by a database sync"
	HelpTextJobRuns             = "Total number of background job runs"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
	LabelReason   = "reason"
	LabelRegistry = "registry"
	LabelResult   = "result"
	LabelOutcome  = "outcome"
	LabelJob      = "job"
)

// Label values
const (
	ReasonMissingCategory = "missing_category"
	ReasonConstructor     = "constructor"
	ReasonPanic           = "panic"

	ResultHit  = "hit"
	ResultMiss = "miss"

	OutcomeSuccess = "success"
	OutcomeRefused = "refused"
	OutcomeFailed  = "failed"

	OutcomeInserted = "inserted"
	OutcomeUpdated  = "updated"
	OutcomeSkipped  = "skipped"
	OutcomeDropped  = "dropped"

	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LoadLatencyBuckets covers directory reads through slow asset server round trips.
var LoadLatencyBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 15}
