package metrics

import (
	"github.com/noloitering/raylib/assetfs"
	"github.com/noloitering/raylib/fileio"
)

// fileObserver implements fileio.Observer using the Prometheus metrics
// declared in this package.
type fileObserver struct{}

// NewFileObserver creates an observer that records file operation metrics
// into the Prometheus counters and histograms declared in metrics.go.
func NewFileObserver() fileio.Observer {
	return &fileObserver{}
}

func (o *fileObserver) ObserveOperation(operation, status string, durationSeconds float64, bytes int) {
	FileOperationsTotal.WithLabelValues(operation, status).Inc()
	FileOperationDuration.WithLabelValues(operation).Observe(durationSeconds)
	if bytes > 0 {
		FileOperationBytes.WithLabelValues(operation).Add(float64(bytes))
	}
}

func (o *fileObserver) ObserveRetryAttempt(retryOp, volume string) {
	FileRetryAttempts.WithLabelValues(retryOp, volume).Inc()
}

func (o *fileObserver) ObserveRetrySuccess(retryOp, volume string) {
	FileRetrySuccess.WithLabelValues(retryOp, volume).Inc()
}

func (o *fileObserver) ObserveRetryFailure(retryOp, volume string) {
	FileRetryFailures.WithLabelValues(retryOp, volume).Inc()
}

func (o *fileObserver) ObserveRetryDuration(retryOp, volume string, durationSeconds float64) {
	FileRetryDuration.WithLabelValues(retryOp, volume).Observe(durationSeconds)
}

func (o *fileObserver) ObserveStaleError(retryOp, volume string) {
	FileStaleErrors.WithLabelValues(retryOp, volume).Inc()
}

// assetObserver implements assetfs.Observer using the Prometheus metrics
// declared in this package.
type assetObserver struct{}

// NewAssetObserver creates an observer that records asset open metrics.
func NewAssetObserver() assetfs.Observer {
	return &assetObserver{}
}

func (o *assetObserver) ObserveOpen(source string) {
	AssetOpensTotal.WithLabelValues(source).Inc()
}
