// Package metrics provides Prometheus instrumentation for the file access
// and asset packaging layers.
//
// All metrics are prefixed with "raylib_" to avoid naming collisions with
// other applications sharing a registry.
//
// # Metric Categories
//
// ## File Operation Metrics
//
// Track load and save helpers:
//   - FileOperationsTotal: Counter of operations by name and status
//   - FileOperationBytes: Counter of bytes moved per operation
//   - FileOperationDuration: Histogram of operation duration
//
// ## Retry Metrics
//
// Track stale file handle recovery on network mounts:
//   - FileRetryAttempts: Counter of retry attempts by operation and volume
//   - FileRetrySuccess: Counter of operations that succeeded after retrying
//   - FileRetryFailures: Counter of operations that exhausted their retries
//   - FileStaleErrors: Counter of stale handle errors observed
//   - FileRetryDuration: Histogram of total time spent per retried operation
//
// ## Asset Metrics
//
// Track where asset opens are served from:
//   - AssetOpensTotal: Counter of opens by source (bundle, fallback, direct)
//   - AssetBundleEntries: Gauge of entries in the installed bundle
//   - AssetBundleBytes: Gauge of unpacked bundle payload size
//
// # Wiring
//
// The fileio and assetfs packages report events through small observer
// interfaces so they stay importable without Prometheus. Connect them at
// startup:
//
//	fileio.SetObserver(metrics.NewFileObserver())
//	assetfs.SetObserver(metrics.NewAssetObserver())
//	metrics.InitializeMetrics()
//
// [InitializeMetrics] pre-populates the expected label combinations so every
// series is present from the first scrape. The [Collector] keeps the bundle
// gauges current on a fixed interval.
package metrics
