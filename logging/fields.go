package logging

import (
	"time"

	"go.uber.org/zap"

	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// String constructs a field with the given key and value.
func String(key, val string) zap.Field {
	return zap.String(key, val)
}

// Int constructs a field with the given key and value.
func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Int64 constructs a field with the given key and value.
func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

// Float64 constructs a field with the given key and value.
func Float64(key string, val float64) zap.Field {
	return zap.Float64(key, val)
}

// Bool constructs a field with the given key and value.
func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

// Time constructs a field with the given key and value.
func Time(key string, val time.Time) zap.Field {
	return zap.Time(key, val)
}

// Decimal constructs a field holding the string form of a decimal.
func Decimal(key string, val num.Decimal) zap.Field {
	return zap.String(key, val.String())
}

// Error constructs a field that carries an error.
func Error(err error) zap.Field {
	return zap.Error(err)
}

// Order constructs a set of identifying fields for an order.
func Order(o types.Order) zap.Field {
	return zap.Any("order", map[string]string{
		"id":        o.ID,
		"symbol":    o.Symbol,
		"side":      o.Side.String(),
		"type":      o.Type.String(),
		"tif":       o.TimeInForce.String(),
		"size":      o.Size.String(),
		"remaining": o.Remaining.String(),
		"price":     o.Price.String(),
		"status":    o.Status.String(),
	})
}

// OrderWithTag constructs an order field under the given key.
func OrderWithTag(o types.Order, tag string) zap.Field {
	return zap.Any(tag, map[string]string{
		"id":     o.ID,
		"symbol": o.Symbol,
		"side":   o.Side.String(),
		"status": o.Status.String(),
	})
}

// Fill constructs a set of identifying fields for a fill.
func Fill(f types.Fill) zap.Field {
	return zap.Any("fill", map[string]string{
		"id":       f.ID,
		"order-id": f.OrderID,
		"symbol":   f.Symbol,
		"side":     f.Side.String(),
		"size":     f.Size.String(),
		"price":    f.Price.String(),
	})
}

// Tick constructs a set of identifying fields for a market data tick.
func Tick(md types.MarketData) zap.Field {
	return zap.Any("tick", map[string]string{
		"symbol":    md.Symbol,
		"timestamp": time.Unix(0, md.Timestamp).UTC().Format(time.RFC3339Nano),
		"high":      md.High.String(),
		"low":       md.Low.String(),
		"close":     md.Close.String(),
	})
}
