package metrics

import "time"

// Recorder receives submission lifecycle events.
type Recorder interface {
	// SubmissionStarted is called once per accepted submission.
	SubmissionStarted()
	// FactFetched reports the outcome and latency of one provider call.
	FactFetched(d time.Duration, err error)
	// SubmissionDiscarded counts fetch outcomes dropped as stale.
	SubmissionDiscarded()
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) SubmissionStarted()               {}
func (NopRecorder) FactFetched(time.Duration, error) {}
func (NopRecorder) SubmissionDiscarded()             {}
