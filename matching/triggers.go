package matching

import (
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/types"
)

// evaluateTriggers runs one trigger check per parked conditional order
// against the tick, ratcheting trailing references first. Fired orders are
// removed from the parked queue and returned in submission order so they
// can trade on the very tick that triggered them.
func (b *OrderBook) evaluateTriggers(tick types.MarketData) []*types.Order {
	if len(b.parked) == 0 {
		return nil
	}

	var fired []*types.Order
	remaining := b.parked[:0]
	for _, o := range b.parked {
		if triggered(o, tick) {
			fired = append(fired, o)
			if b.LogRemovedOrdersDebug {
				b.log.Debug("conditional order triggered",
					logging.Order(*o),
					logging.Tick(tick))
			}
			continue
		}
		remaining = append(remaining, o)
	}
	for i := len(remaining); i < len(b.parked); i++ {
		b.parked[i] = nil
	}
	b.parked = remaining
	return fired
}

func triggered(o *types.Order, tick types.MarketData) bool {
	switch o.Type {
	case types.OrderTypeStop:
		if o.Side == types.SideBuy {
			return tick.High.GreaterThanOrEqual(o.TriggerPrice)
		}
		return tick.Low.LessThanOrEqual(o.TriggerPrice)
	case types.OrderTypeTrailingStop:
		return trailingTriggered(o, tick)
	default:
		return false
	}
}

// trailingTriggered ratchets the trailing reference in the favourable
// direction, at most once per tick, then checks the offset breach. The
// reference never retreats.
func trailingTriggered(o *types.Order, tick types.MarketData) bool {
	if o.Side == types.SideSell {
		if o.TrailingRef.IsZero() || tick.High.GreaterThan(o.TrailingRef) {
			o.TrailingRef = tick.High
		}
		return tick.Low.LessThanOrEqual(o.TrailingRef.Sub(o.TrailAmount))
	}

	if o.TrailingRef.IsZero() || tick.Low.LessThan(o.TrailingRef) {
		o.TrailingRef = tick.Low
	}
	return tick.High.GreaterThanOrEqual(o.TrailingRef.Add(o.TrailAmount))
}
