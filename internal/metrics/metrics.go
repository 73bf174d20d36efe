package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// File operation metrics
var (
	FileOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raylib_fileio_operations_total",
			Help: "Total number of file load and save operations",
		},
		[]string{"operation", "status"},
	)

	FileOperationBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raylib_fileio_bytes_total",
			Help: "Total bytes moved by file load and save operations",
		},
		[]string{"operation"},
	)

	FileOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "raylib_fileio_operation_duration_seconds",
			Help:    "File operation duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)
)

// Retry metrics
var (
	FileRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raylib_fileio_retry_attempts_total",
			Help: "Total number of retry attempts after stale file handles",
		},
		[]string{"operation", "volume"},
	)

	FileRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raylib_fileio_retry_success_total",
			Help: "Total number of operations that succeeded after retrying",
		},
		[]string{"operation", "volume"},
	)

	FileRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raylib_fileio_retry_failures_total",
			Help: "Total number of operations that exhausted their retries",
		},
		[]string{"operation", "volume"},
	)

	FileStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raylib_fileio_stale_errors_total",
			Help: "Total number of stale file handle errors observed",
		},
		[]string{"operation", "volume"},
	)

	FileRetryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "raylib_fileio_retry_duration_seconds",
			Help:    "Total time spent per retried operation in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"operation", "volume"},
	)
)

// Asset metrics
var (
	AssetOpensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raylib_assets_opens_total",
			Help: "Total number of asset opens by serving source",
		},
		[]string{"source"}, // "bundle", "fallback", "direct"
	)

	AssetBundleEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "raylib_assets_bundle_entries",
			Help: "Number of entries in the installed asset bundle",
		},
	)

	AssetBundleBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "raylib_assets_bundle_bytes",
			Help: "Unpacked payload size of the installed asset bundle in bytes",
		},
	)
)
