package costs

import (
	"time"

	"github.com/pkg/errors"

	"github.com/kay-ou/SimTradeLab-sub001/types"
)

// ErrNegativeDelay signals a latency delay below zero.
var ErrNegativeDelay = errors.New("latency delay must not be negative")

// FixedLatency shifts every execution timestamp by a constant delay past
// the tick that produced it.
type FixedLatency struct {
	delay time.Duration
}

// NewFixedLatency returns a constant-delay latency model.
func NewFixedLatency(delay time.Duration) (*FixedLatency, error) {
	if delay < 0 {
		return nil, ErrNegativeDelay
	}
	return &FixedLatency{delay: delay}, nil
}

func (l *FixedLatency) ExecutionTime(_ *types.Order, tick types.MarketData) (int64, error) {
	return tick.Timestamp + l.delay.Nanoseconds(), nil
}
