package costs

import (
	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// SlippageModel prices the market impact of an execution. The returned
// delta is a non-negative offset from the nominal match price, the matching
// core applies it against the aggressor (a buyer pays more, a seller
// receives less). Models must be stateless per call and must not retain
// references to the order.
type SlippageModel interface {
	CalculateSlippage(order *types.Order, tick types.MarketData) (num.Decimal, error)
}

// CommissionModel computes the commission charged on a single fill. The
// amount is recorded on the fill, never folded into its price.
type CommissionModel interface {
	CalculateCommission(fill *types.Fill) (num.Decimal, error)
}

// LatencyModel determines the effective execution timestamp of a fill
// relative to the tick that produced it.
type LatencyModel interface {
	ExecutionTime(order *types.Order, tick types.MarketData) (int64, error)
}

// Models bundles the three cost model roles injected into a matching core.
// Any nil role behaves as its no-op default.
type Models struct {
	Slippage   SlippageModel
	Commission CommissionModel
	Latency    LatencyModel
}

// WithDefaults returns the bundle with nil roles replaced by no-op models.
func (m Models) WithDefaults() Models {
	if m.Slippage == nil {
		m.Slippage = NoSlippage{}
	}
	if m.Commission == nil {
		m.Commission = NoCommission{}
	}
	if m.Latency == nil {
		m.Latency = NoLatency{}
	}
	return m
}

// NoSlippage is the zero-impact default.
type NoSlippage struct{}

func (NoSlippage) CalculateSlippage(_ *types.Order, _ types.MarketData) (num.Decimal, error) {
	return num.Zero(), nil
}

// NoCommission is the zero-cost default.
type NoCommission struct{}

func (NoCommission) CalculateCommission(_ *types.Fill) (num.Decimal, error) {
	return num.Zero(), nil
}

// NoLatency executes fills at the tick timestamp.
type NoLatency struct{}

func (NoLatency) ExecutionTime(_ *types.Order, tick types.MarketData) (int64, error) {
	return tick.Timestamp, nil
}
