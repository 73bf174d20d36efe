package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	// --- File operation metrics (per operation × status) ---
	operations := []string{"load", "save", "load_text", "save_text"}
	statuses := []string{"success", "partial", "error"}

	for _, op := range operations {
		for _, status := range statuses {
			FileOperationsTotal.WithLabelValues(op, status)
		}
		FileOperationBytes.WithLabelValues(op)
		FileOperationDuration.WithLabelValues(op)
	}

	// --- Retry metrics (per retry-operation × volume) ---
	retryOps := []string{"stat", "open"}
	volumes := []string{"data", "bundle", "unknown"}

	for _, op := range retryOps {
		for _, vol := range volumes {
			FileRetryAttempts.WithLabelValues(op, vol)
			FileRetrySuccess.WithLabelValues(op, vol)
			FileRetryFailures.WithLabelValues(op, vol)
			FileStaleErrors.WithLabelValues(op, vol)
			FileRetryDuration.WithLabelValues(op, vol)
		}
	}

	// --- Asset opens by serving source ---
	for _, source := range []string{"bundle", "fallback", "direct"} {
		AssetOpensTotal.WithLabelValues(source)
	}
}
