package types

import (
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// MarketData is one OHLCV observation for a symbol. It is the single input
// driving trigger evaluation and matching, and is never mutated by the
// engine.
type MarketData struct {
	Symbol    string
	Timestamp int64
	Open      num.Decimal
	High      num.Decimal
	Low       num.Decimal
	Close     num.Decimal
	Volume    num.Decimal
}

// Validate sanity-checks a tick before it enters the engine.
func (md *MarketData) Validate() error {
	if md.Symbol == "" {
		return ErrInvalidSymbol
	}
	if !md.High.IsPositive() || !md.Low.IsPositive() {
		return ErrInvalidPrice
	}
	if md.Low.GreaterThan(md.High) {
		return ErrInvalidPrice
	}
	return nil
}
