package matching

import (
	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// OrderBook holds every order for one symbol: the two resting sides, the
// parked conditional orders waiting for their trigger, and the active
// orders that have not yet had a matching attempt. It exclusively owns the
// append-only fill log for its lifetime.
type OrderBook struct {
	log *logging.Logger
	Config

	symbol string
	buy    *OrderBookSide
	sell   *OrderBookSide

	// all orders ever submitted, in submission order, terminal included
	orders     []*types.Order
	ordersByID map[string]*types.Order

	// pending conditional orders, submission order
	parked []*types.Order
	// active orders awaiting their first matching attempt
	arrivals []*types.Order

	fills []*types.Fill
	ff    *fillFactory
}

// NewOrderBook creates a new order book for a symbol with the given cost
// models injected.
func NewOrderBook(log *logging.Logger, config Config, symbol string, models costs.Models) *OrderBook {
	return &OrderBook{
		log:        log,
		Config:     config,
		symbol:     symbol,
		buy:        newOrderBookSide(log, types.SideBuy),
		sell:       newOrderBookSide(log, types.SideSell),
		ordersByID: map[string]*types.Order{},
		ff:         newFillFactory(models),
	}
}

// ReloadConf updates the book's internal configuration.
func (b *OrderBook) ReloadConf(cfg Config) {
	b.Config = cfg
}

// SubmitOrder validates and stores an order. Conditional orders park as
// pending, everything else becomes active and is queued for a matching
// attempt on the next tick. No matching happens here, the market data feed
// drives all executions.
func (b *OrderBook) SubmitOrder(order *types.Order) error {
	if err := b.validateOrder(order); err != nil {
		b.log.Error("order validation failed",
			logging.Order(*order),
			logging.Error(err))
		return err
	}

	if order.TimeInForce == types.TimeInForceUnspecified {
		order.TimeInForce = types.TimeInForceGTC
	}
	order.Remaining = order.Size

	if order.Type.Conditional() {
		order.Status = types.OrderStatusPending
		b.parked = append(b.parked, order)
	} else {
		order.Status = types.OrderStatusActive
		b.arrivals = append(b.arrivals, order)
	}

	b.orders = append(b.orders, order)
	b.ordersByID[order.ID] = order
	return nil
}

func (b *OrderBook) validateOrder(order *types.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if order.Symbol != b.symbol {
		return types.ErrInvalidSymbol
	}
	if _, exists := b.ordersByID[order.ID]; exists {
		return types.ErrInvalidOrderID
	}
	return nil
}

// CancelOrder cancels a non-terminal order wherever it currently lives:
// parked, awaiting arrival, or resting on the book.
func (b *OrderBook) CancelOrder(id string) (*types.Order, error) {
	order, exists := b.ordersByID[id]
	if !exists {
		return nil, types.ErrOrderNotFound
	}
	if order.Status.Terminal() {
		return nil, types.ErrOrderTerminal
	}

	switch order.Status {
	case types.OrderStatusPending:
		b.parked = removeFromQueue(b.parked, id)
	case types.OrderStatusActive, types.OrderStatusPartiallyFilled:
		if !b.unqueueArrival(id) {
			if _, err := b.sideFor(order).RemoveOrder(order); err != nil {
				b.log.Error("order missing from book on cancel",
					logging.Order(*order),
					logging.Error(err))
				return nil, err
			}
		}
	}

	order.Status = types.OrderStatusCancelled
	if b.LogRemovedOrdersDebug {
		b.log.Debug("order cancelled", logging.Order(*order))
	}
	return order, nil
}

func (b *OrderBook) unqueueArrival(id string) bool {
	for i, o := range b.arrivals {
		if o.ID == id {
			b.arrivals = append(b.arrivals[:i], b.arrivals[i+1:]...)
			return true
		}
	}
	return false
}

func removeFromQueue(queue []*types.Order, id string) []*types.Order {
	for i, o := range queue {
		if o.ID == id {
			return append(queue[:i], queue[i+1:]...)
		}
	}
	return queue
}

// OnTick advances the book by one market data observation: parked
// conditional orders are trigger-checked first and fired ones join the
// matching queue for this same tick, then every queued active order gets a
// matching attempt against the opposite side, in submission order, with
// its time-in-force applied to the remainder.
func (b *OrderBook) OnTick(tick types.MarketData) (*types.MatchConfirmation, error) {
	conf := &types.MatchConfirmation{}

	fired := b.evaluateTriggers(tick)
	for _, o := range fired {
		o.Status = types.OrderStatusActive
		b.arrivals = append(b.arrivals, o)
	}

	queue := b.arrivals
	b.arrivals = nil
	affected := map[string]struct{}{}

	for _, agg := range queue {
		if agg.Status.Terminal() {
			continue
		}
		opposite := b.sideFor(agg).other(b)

		if agg.TimeInForce == types.TimeInForceFOK {
			if opposite.volumeAvailable(agg).LessThan(agg.Remaining) {
				// normal business outcome: kill the whole order, no fills
				agg.Status = types.OrderStatusCancelled
				appendAffected(conf, affected, agg)
				continue
			}
		}

		fills, impacted, err := opposite.uncross(agg, b.ff, tick)
		conf.Fills = append(conf.Fills, fills...)
		b.fills = append(b.fills, fills...)
		for _, o := range impacted {
			appendAffected(conf, affected, o)
		}
		if err != nil {
			return conf, err
		}

		switch {
		case agg.Remaining.IsZero():
			agg.Status = types.OrderStatusFilled
			appendAffected(conf, affected, agg)
		case agg.TimeInForce == types.TimeInForceIOC:
			// partial fills stand, the remainder never rests
			agg.Status = types.OrderStatusCancelled
			appendAffected(conf, affected, agg)
		default:
			if len(fills) > 0 {
				agg.Status = types.OrderStatusPartiallyFilled
				appendAffected(conf, affected, agg)
			}
			b.sideFor(agg).addOrder(agg)
		}
	}

	if b.LogPriceLevelsDebug {
		b.log.Debug("tick processed",
			logging.Tick(tick),
			logging.Int("buy-levels", len(b.buy.levels)),
			logging.Int("sell-levels", len(b.sell.levels)),
			logging.Int("fills", len(conf.Fills)))
	}
	return conf, nil
}

// appendAffected records an order in the confirmation once, keeping the
// final state visible even when an order is touched multiple times within
// the same tick.
func appendAffected(conf *types.MatchConfirmation, seen map[string]struct{}, o *types.Order) {
	if _, ok := seen[o.ID]; ok {
		return
	}
	seen[o.ID] = struct{}{}
	conf.OrdersAffected = append(conf.OrdersAffected, o)
}

func (b *OrderBook) sideFor(o *types.Order) *OrderBookSide {
	if o.Side == types.SideBuy {
		return b.buy
	}
	return b.sell
}

func (s *OrderBookSide) other(b *OrderBook) *OrderBookSide {
	if s.side == types.SideBuy {
		return b.sell
	}
	return b.buy
}

// GetOrderByID returns the live order with the given ID.
func (b *OrderBook) GetOrderByID(id string) (*types.Order, error) {
	order, exists := b.ordersByID[id]
	if !exists {
		return nil, types.ErrOrderNotFound
	}
	return order, nil
}

// Orders returns every order the book has seen, in submission order.
func (b *OrderBook) Orders() []*types.Order {
	return b.orders
}

// Fills returns the book's append-only fill log.
func (b *OrderBook) Fills() []*types.Fill {
	return b.fills
}

// BestBidPriceAndVolume returns the top of the buy side.
func (b *OrderBook) BestBidPriceAndVolume() (num.Decimal, num.Decimal, error) {
	return b.buy.BestPriceAndVolume()
}

// BestOfferPriceAndVolume returns the top of the sell side.
func (b *OrderBook) BestOfferPriceAndVolume() (num.Decimal, num.Decimal, error) {
	return b.sell.BestPriceAndVolume()
}
