package metrics

import "time"

// TimeCounter holds a start time and the label values for the engine time
// counter, so callers cannot accidentally overwrite the start time or
// duplicate the labels.
type TimeCounter struct {
	labelValues []string
	start       time.Time
}

// NewTimeCounter returns a new TimeCounter, with the start time already recorded.
func NewTimeCounter(labelValues ...string) *TimeCounter {
	return &TimeCounter{
		labelValues: labelValues,
		start:       time.Now(),
	}
}

// EngineTimeCounterAdd adds the elapsed time to the engine time counter.
// Call it with defer right after NewTimeCounter.
func (tc *TimeCounter) EngineTimeCounterAdd() {
	// Testing does not set metrics up.
	if engineTime == nil {
		return
	}
	engineTime.WithLabelValues(tc.labelValues...).Add(time.Since(tc.start).Seconds())
}
