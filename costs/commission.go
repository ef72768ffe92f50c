package costs

import (
	"github.com/pkg/errors"

	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// ErrNegativeRate signals a commission rate or minimum below zero.
var ErrNegativeRate = errors.New("commission rate must not be negative")

// RateCommission charges rate * notional on every fill, with a minimum
// charge per fill.
type RateCommission struct {
	rate    num.Decimal
	minimum num.Decimal
}

// NewRateCommission returns a proportional commission model.
func NewRateCommission(rate, minimum num.Decimal) (*RateCommission, error) {
	if rate.IsNegative() || minimum.IsNegative() {
		return nil, ErrNegativeRate
	}
	return &RateCommission{rate: rate, minimum: minimum}, nil
}

func (c *RateCommission) CalculateCommission(fill *types.Fill) (num.Decimal, error) {
	charge := fill.Notional().Mul(c.rate)
	return num.MaxD(charge, c.minimum), nil
}
