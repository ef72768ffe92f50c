package plugins

import (
	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/matching"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// Built-in plugin names.
const (
	DepthMatchingEngine = "DepthMatchingEngine"

	FixedSlippage       = "FixedSlippage"
	VolumeRatioSlippage = "VolumeRatioSlippage"
	NoSlippage          = "NoSlippage"

	RateCommission = "RateCommission"
	NoCommission   = "NoCommission"

	FixedLatency = "FixedLatency"
	NoLatency    = "NoLatency"
)

func init() {
	RegisterMatchingEngine(DepthMatchingEngine, func(log *logging.Logger, cfg matching.Config, models costs.Models) matching.MatchingEngine {
		return matching.NewEngine(log, cfg, models)
	})

	RegisterSlippageModel(NoSlippage, func(Params) (costs.SlippageModel, error) {
		return costs.NoSlippage{}, nil
	})
	RegisterSlippageModel(FixedSlippage, func(params Params) (costs.SlippageModel, error) {
		offset, err := params.Decimal("offset", num.Zero())
		if err != nil {
			return nil, err
		}
		return costs.NewFixedSlippage(offset)
	})
	RegisterSlippageModel(VolumeRatioSlippage, func(params Params) (costs.SlippageModel, error) {
		factor, err := params.Decimal("factor", num.Zero())
		if err != nil {
			return nil, err
		}
		return costs.NewVolumeRatioSlippage(factor)
	})

	RegisterCommissionModel(NoCommission, func(Params) (costs.CommissionModel, error) {
		return costs.NoCommission{}, nil
	})
	RegisterCommissionModel(RateCommission, func(params Params) (costs.CommissionModel, error) {
		rate, err := params.Decimal("rate", num.Zero())
		if err != nil {
			return nil, err
		}
		minimum, err := params.Decimal("minimum", num.Zero())
		if err != nil {
			return nil, err
		}
		return costs.NewRateCommission(rate, minimum)
	})

	RegisterLatencyModel(NoLatency, func(Params) (costs.LatencyModel, error) {
		return costs.NoLatency{}, nil
	})
	RegisterLatencyModel(FixedLatency, func(params Params) (costs.LatencyModel, error) {
		delay, err := params.Duration("delay", 0)
		if err != nil {
			return nil, err
		}
		return costs.NewFixedLatency(delay)
	})
}
