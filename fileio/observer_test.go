package fileio

import "testing"

type opRecord struct {
	operation string
	status    string
	bytes     int
}

// recordingObserver captures observations for assertions.
type recordingObserver struct {
	ops            []opRecord
	retryAttempts  int
	retrySuccesses int
	retryFailures  int
	retryDurations int
	staleErrors    int
}

func (o *recordingObserver) ObserveOperation(operation, status string, durationSeconds float64, bytes int) {
	o.ops = append(o.ops, opRecord{operation: operation, status: status, bytes: bytes})
}

func (o *recordingObserver) ObserveRetryAttempt(retryOp, volume string) {
	o.retryAttempts++
}

func (o *recordingObserver) ObserveRetrySuccess(retryOp, volume string) {
	o.retrySuccesses++
}

func (o *recordingObserver) ObserveRetryFailure(retryOp, volume string) {
	o.retryFailures++
}

func (o *recordingObserver) ObserveRetryDuration(retryOp, volume string, durationSeconds float64) {
	o.retryDurations++
}

func (o *recordingObserver) ObserveStaleError(retryOp, volume string) {
	o.staleErrors++
}

func TestSetObserver(t *testing.T) {
	defer SetObserver(nil)

	obs := &recordingObserver{}
	SetObserver(obs)
	if observe() != Observer(obs) {
		t.Error("SetObserver did not install the observer")
	}

	SetObserver(nil)
	if _, ok := observe().(nopObserver); !ok {
		t.Error("SetObserver(nil) should restore the no-op observer")
	}
}
