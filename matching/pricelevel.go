package matching

import (
	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// PriceLevel holds the resting orders at one price, in arrival order.
type PriceLevel struct {
	price  num.Decimal
	orders []*types.Order
	volume num.Decimal
}

// NewPriceLevel returns an empty level for the given price.
func NewPriceLevel(price num.Decimal) *PriceLevel {
	return &PriceLevel{
		price:  price,
		orders: []*types.Order{},
		volume: num.Zero(),
	}
}

func (l *PriceLevel) addOrder(o *types.Order) {
	l.orders = append(l.orders, o)
	l.volume = l.volume.Add(o.Remaining)
}

func (l *PriceLevel) removeOrder(index int) {
	l.volume = l.volume.Sub(l.orders[index].Remaining)
	copy(l.orders[index:], l.orders[index+1:])
	l.orders[len(l.orders)-1] = nil
	l.orders = l.orders[:len(l.orders)-1]
}

func (l *PriceLevel) reduceVolume(amount num.Decimal) {
	l.volume = l.volume.Sub(amount)
}

// uncross matches the aggressive order against the level's resting orders in
// arrival order. Returns whether the aggressor was fully filled, the fills
// produced (one pair per crossing) and the passive orders impacted.
func (l *PriceLevel) uncross(agg *types.Order, ff *fillFactory, tick types.MarketData) (bool, []*types.Fill, []*types.Order, error) {
	var (
		fills    []*types.Fill
		impacted []*types.Order
		consumed int
	)

	for _, pass := range l.orders {
		if !agg.Remaining.IsPositive() {
			break
		}

		size := num.MinD(agg.Remaining, pass.Remaining)
		if !size.IsPositive() {
			panic("fill size must be positive")
		}

		price := crossPrice(agg, pass, tick)
		pair, err := ff.fillPair(agg, pass, size, price, tick)
		if err != nil {
			return false, fills, impacted, err
		}

		agg.Remaining = agg.Remaining.Sub(size)
		pass.Remaining = pass.Remaining.Sub(size)
		l.reduceVolume(size)

		if pass.Remaining.IsZero() {
			pass.Status = types.OrderStatusFilled
			consumed++
		} else {
			pass.Status = types.OrderStatusPartiallyFilled
		}

		fills = append(fills, pair...)
		impacted = append(impacted, pass)
	}

	// filled passives sit at the front of the queue, drop them in one pass
	if consumed > 0 {
		for i := 0; i < len(l.orders)-consumed; i++ {
			l.orders[i] = l.orders[i+consumed]
		}
		for i := len(l.orders) - consumed; i < len(l.orders); i++ {
			l.orders[i] = nil
		}
		l.orders = l.orders[:len(l.orders)-consumed]
	}

	return agg.Remaining.IsZero(), fills, impacted, nil
}

// crossPrice is the execution price for one crossing: the resting order's
// price. A resting order without a price (parked market order) takes the
// aggressor's limit, and with no price on either side the tick close.
func crossPrice(agg, pass *types.Order, tick types.MarketData) num.Decimal {
	if pass.HasPrice() {
		return pass.Price
	}
	if agg.HasPrice() {
		return agg.Price
	}
	return tick.Close
}
