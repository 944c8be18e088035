package usecase

import "time"

// Recorder observes batch-level sampler activity (ambient, not core). A
// nil Recorder is valid everywhere it is accepted; Sampler calls through
// a nilRecorder default so the hot loop never checks for nil.
type Recorder interface {
	BatchStarted(index int)
	BatchFinished(index int, emitted, discarded int, duration time.Duration)
	SampleDiscarded(reason string)
}

type nilRecorder struct{}

func (nilRecorder) BatchStarted(int)                           {}
func (nilRecorder) BatchFinished(int, int, int, time.Duration) {}
func (nilRecorder) SampleDiscarded(string)                     {}
