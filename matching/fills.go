package matching

import (
	"github.com/google/uuid"

	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// fillFactory builds fill pairs for matched crossings, consulting the
// injected cost models for slippage, commission and execution time. Model
// errors are handed straight back to the caller, a failing cost model is a
// configuration bug, not a business outcome.
type fillFactory struct {
	models costs.Models
}

func newFillFactory(models costs.Models) *fillFactory {
	return &fillFactory{models: models.WithDefaults()}
}

// fillPair creates the two execution records of one crossing. The slippage
// delta worsens the aggressor's price only, the passive side keeps the
// nominal match price. Commission is recorded per fill.
func (f *fillFactory) fillPair(agg, pass *types.Order, size, price num.Decimal, tick types.MarketData) ([]*types.Fill, error) {
	delta, err := f.models.Slippage.CalculateSlippage(agg, tick)
	if err != nil {
		return nil, err
	}

	aggPrice := price
	if agg.Side == types.SideBuy {
		aggPrice = price.Add(delta)
	} else {
		aggPrice = num.MaxD(price.Sub(delta), num.Zero())
	}

	aggFill, err := f.newFill(agg, size, aggPrice, tick)
	if err != nil {
		return nil, err
	}
	passFill, err := f.newFill(pass, size, price, tick)
	if err != nil {
		return nil, err
	}
	return []*types.Fill{aggFill, passFill}, nil
}

func (f *fillFactory) newFill(o *types.Order, size, price num.Decimal, tick types.MarketData) (*types.Fill, error) {
	at, err := f.models.Latency.ExecutionTime(o, tick)
	if err != nil {
		return nil, err
	}
	fill := &types.Fill{
		ID:        uuid.NewString(),
		OrderID:   o.ID,
		Symbol:    o.Symbol,
		Side:      o.Side,
		Size:      size,
		Price:     price,
		Timestamp: at,
	}
	commission, err := f.models.Commission.CalculateCommission(fill)
	if err != nil {
		return nil, err
	}
	fill.Commission = commission
	return fill, nil
}
