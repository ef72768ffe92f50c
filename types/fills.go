package types

import (
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// Fill is one execution record for one side of a matched crossing. Fills
// are append-only, the matching core owns the log and exposes copies.
type Fill struct {
	ID      string
	OrderID string
	Symbol  string
	Side    Side
	Size    num.Decimal
	Price   num.Decimal
	// Commission is reported on the fill, it is never folded into Price.
	Commission num.Decimal
	Timestamp  int64
}

// Clone returns an independent copy of the fill.
func (f *Fill) Clone() *Fill {
	cpy := *f
	return &cpy
}

// Notional returns price * size.
func (f *Fill) Notional() num.Decimal {
	return f.Price.Mul(f.Size)
}
