package costs

import (
	"github.com/pkg/errors"

	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

var (
	// ErrNegativeOffset signals a slippage offset below zero.
	ErrNegativeOffset = errors.New("slippage offset must not be negative")
	// ErrZeroBarVolume signals a tick with no volume handed to a
	// volume-ratio model.
	ErrZeroBarVolume = errors.New("tick has zero volume")
)

// FixedSlippage applies a constant absolute price offset to every
// execution.
type FixedSlippage struct {
	offset num.Decimal
}

// NewFixedSlippage returns a fixed slippage model with the given absolute
// offset.
func NewFixedSlippage(offset num.Decimal) (*FixedSlippage, error) {
	if offset.IsNegative() {
		return nil, ErrNegativeOffset
	}
	return &FixedSlippage{offset: offset}, nil
}

func (s *FixedSlippage) CalculateSlippage(_ *types.Order, _ types.MarketData) (num.Decimal, error) {
	return s.offset, nil
}

// VolumeRatioSlippage scales impact with the share of the bar's volume the
// order consumes: delta = close * factor * (order size / bar volume).
type VolumeRatioSlippage struct {
	factor num.Decimal
}

// NewVolumeRatioSlippage returns a volume-ratio slippage model with the
// given impact factor.
func NewVolumeRatioSlippage(factor num.Decimal) (*VolumeRatioSlippage, error) {
	if factor.IsNegative() {
		return nil, ErrNegativeOffset
	}
	return &VolumeRatioSlippage{factor: factor}, nil
}

func (s *VolumeRatioSlippage) CalculateSlippage(order *types.Order, tick types.MarketData) (num.Decimal, error) {
	if !tick.Volume.IsPositive() {
		return num.Zero(), ErrZeroBarVolume
	}
	ratio := order.Size.Div(tick.Volume)
	return tick.Close.Mul(s.factor).Mul(ratio), nil
}
