package fileio

// Observer records file operation metrics. Implementations are provided
// by the metrics package to keep this package free of a metrics
// dependency.
type Observer interface {
	// ObserveOperation records the outcome of a whole-file operation.
	// operation is "load", "save", "load_text" or "save_text"; status is
	// "success", "partial" or "error"; bytes counts payload bytes moved.
	ObserveOperation(operation, status string, durationSeconds float64, bytes int)

	// ObserveRetry records retry activity on the default capability.
	// retryOp is "stat" or "open"; volume is the resolved volume label.
	ObserveRetryAttempt(retryOp, volume string)
	ObserveRetrySuccess(retryOp, volume string)
	ObserveRetryFailure(retryOp, volume string)
	ObserveRetryDuration(retryOp, volume string, durationSeconds float64)
	ObserveStaleError(retryOp, volume string)
}

// nopObserver drops every observation. It is the default so call sites
// never need a nil check.
type nopObserver struct{}

func (nopObserver) ObserveOperation(operation, status string, durationSeconds float64, bytes int) {}
func (nopObserver) ObserveRetryAttempt(retryOp, volume string)                                    {}
func (nopObserver) ObserveRetrySuccess(retryOp, volume string)                                    {}
func (nopObserver) ObserveRetryFailure(retryOp, volume string)                                    {}
func (nopObserver) ObserveRetryDuration(retryOp, volume string, durationSeconds float64)          {}
func (nopObserver) ObserveStaleError(retryOp, volume string)                                      {}

// defaultObserver is the package-level observer set at startup.
var defaultObserver Observer = nopObserver{}

// SetObserver sets the package-level metrics observer. Passing nil
// restores the no-op observer. Call this once at startup.
func SetObserver(o Observer) {
	if o == nil {
		o = nopObserver{}
	}
	defaultObserver = o
}

// observe returns the observer to record through.
func observe() Observer {
	return defaultObserver
}
