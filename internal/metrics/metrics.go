package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Item Model Metrics
var (
	ItemsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCreated,
			Help: HelpTextItemsCreated,
		},
		[]string{LabelCategory},
	)

	ItemCreateFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemCreateFailures,
			Help: HelpTextItemCreateFailures,
		},
		[]string{LabelReason},
	)

	UnknownEffects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnknownEffects,
			Help: HelpTextUnknownEffects,
		},
		[]string{LabelRegistry},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelCategory, LabelOutcome},
	)
)

// Catalog Metrics
var (
	CategoryLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCategoryLoads,
			Help: HelpTextCategoryLoads,
		},
		[]string{LabelCategory, LabelOutcome},
	)

	CategoryLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCategoryLoadSeconds,
			Help:    HelpTextCategoryLoadSeconds,
			Buckets: LoadLatencyBuckets,
		},
		[]string{LabelCategory},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelResult},
	)

	SyncedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSyncedRecords,
			Help: HelpTextSyncedRecords,
		},
		[]string{LabelOutcome},
	)
)

// Background Job Metrics
var (
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRuns,
			Help: HelpTextJobRuns,
		},
		[]string{LabelJob, LabelOutcome},
	)
)
