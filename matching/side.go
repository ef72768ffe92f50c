package matching

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

var (
	// ErrPriceNotFound signals that a price was not found on the book side.
	ErrPriceNotFound = errors.New("price-volume pair not found")
	// ErrEmptyBookSide signals an empty side when a best price was requested.
	ErrEmptyBookSide = errors.New("no orders on the book side")
)

// OrderBookSide represents a side of the book, either Sell or Buy.
// Priced levels are kept sorted with the best price at the end of the
// slice, parked market orders sit in their own arrival-order queue and
// outrank every priced level.
type OrderBookSide struct {
	side types.Side
	log  *logging.Logger

	levels []*PriceLevel
	market []*types.Order
}

func newOrderBookSide(log *logging.Logger, side types.Side) *OrderBookSide {
	return &OrderBookSide{
		side:   side,
		log:    log,
		levels: []*PriceLevel{},
	}
}

func (s *OrderBookSide) addOrder(o *types.Order) {
	if !o.HasPrice() {
		s.market = append(s.market, o)
		return
	}
	s.getPriceLevel(o.Price).addOrder(o)
}

// BestPriceAndVolume returns the top of book price and its volume.
// Parked market orders carry no price and are not considered.
func (s *OrderBookSide) BestPriceAndVolume() (num.Decimal, num.Decimal, error) {
	if len(s.levels) == 0 {
		return num.Zero(), num.Zero(), ErrEmptyBookSide
	}
	last := len(s.levels) - 1
	return s.levels[last].price, s.levels[last].volume, nil
}

// GetVolume returns the volume at the given price level.
func (s *OrderBookSide) GetVolume(price num.Decimal) (num.Decimal, error) {
	level := s.getPriceLevelIfExists(price)
	if level == nil {
		return num.Zero(), ErrPriceNotFound
	}
	return level.volume, nil
}

func (s *OrderBookSide) getPriceLevelIfExists(price num.Decimal) *PriceLevel {
	i := s.searchPriceLevel(price)
	if i < len(s.levels) && s.levels[i].price.Equal(price) {
		return s.levels[i]
	}
	return nil
}

func (s *OrderBookSide) searchPriceLevel(price num.Decimal) int {
	if s.side == types.SideBuy {
		// buy side levels are ordered in ascending price
		return sort.Search(len(s.levels), func(i int) bool {
			return s.levels[i].price.GreaterThanOrEqual(price)
		})
	}
	// sell side levels are ordered in descending price
	return sort.Search(len(s.levels), func(i int) bool {
		return s.levels[i].price.LessThanOrEqual(price)
	})
}

func (s *OrderBookSide) getPriceLevel(price num.Decimal) *PriceLevel {
	i := s.searchPriceLevel(price)
	if i < len(s.levels) && s.levels[i].price.Equal(price) {
		return s.levels[i]
	}

	// append a new elem first to make sure we have enough place,
	// then shift and insert at the right position
	level := NewPriceLevel(price)
	s.levels = append(s.levels, nil)
	copy(s.levels[i+1:], s.levels[i:])
	s.levels[i] = level
	return level
}

// RemoveOrder takes an order out of the side, cancelled or overwritten.
func (s *OrderBookSide) RemoveOrder(o *types.Order) (*types.Order, error) {
	if !o.HasPrice() {
		for i, order := range s.market {
			if order.ID == o.ID {
				s.market = append(s.market[:i], s.market[i+1:]...)
				return order, nil
			}
		}
		return nil, types.ErrOrderNotFound
	}

	i := s.searchPriceLevel(o.Price)
	if i >= len(s.levels) || !s.levels[i].price.Equal(o.Price) {
		return nil, types.ErrOrderNotFound
	}

	oidx := -1
	for index, order := range s.levels[i].orders {
		if order.ID == o.ID {
			oidx = index
			break
		}
	}
	if oidx == -1 {
		return nil, types.ErrOrderNotFound
	}

	order := s.levels[i].orders[oidx]
	s.levels[i].removeOrder(oidx)
	if len(s.levels[i].orders) == 0 {
		s.levels = s.levels[:i+copy(s.levels[i:], s.levels[i+1:])]
	}
	return order, nil
}

// volumeAvailable is the resting volume the aggressor could cross against,
// stopping once the aggressor's remaining size is covered. Used for the
// fill-or-kill pre-scan.
func (s *OrderBookSide) volumeAvailable(agg *types.Order) num.Decimal {
	total := num.Zero()
	for _, o := range s.market {
		total = total.Add(o.Remaining)
		if total.GreaterThanOrEqual(agg.Remaining) {
			return total
		}
	}

	checkPrice := s.crossCheck(agg)
	for i := len(s.levels) - 1; i >= 0; i-- {
		if agg.HasPrice() && !checkPrice(s.levels[i].price) {
			break
		}
		total = total.Add(s.levels[i].volume)
		if total.GreaterThanOrEqual(agg.Remaining) {
			break
		}
	}
	return total
}

// crossCheck returns the price compatibility test for an aggressor hitting
// this side: a buy crosses levels at or below its limit, a sell levels at
// or above.
func (s *OrderBookSide) crossCheck(agg *types.Order) func(num.Decimal) bool {
	if agg.Side == types.SideBuy {
		return func(levelPrice num.Decimal) bool {
			return levelPrice.LessThanOrEqual(agg.Price)
		}
	}
	return func(levelPrice num.Decimal) bool {
		return levelPrice.GreaterThanOrEqual(agg.Price)
	}
}

// uncross matches the aggressive order against this side, best price level
// first, arrival order within a level. Parked market orders are crossed
// before any priced level.
func (s *OrderBookSide) uncross(agg *types.Order, ff *fillFactory, tick types.MarketData) ([]*types.Fill, []*types.Order, error) {
	var (
		fills    []*types.Fill
		impacted []*types.Order
	)

	// resting market orders trade at any price, drain them first
	consumed := 0
	for _, pass := range s.market {
		if !agg.Remaining.IsPositive() {
			break
		}
		size := num.MinD(agg.Remaining, pass.Remaining)
		pair, err := ff.fillPair(agg, pass, size, crossPrice(agg, pass, tick), tick)
		if err != nil {
			return fills, impacted, err
		}
		agg.Remaining = agg.Remaining.Sub(size)
		pass.Remaining = pass.Remaining.Sub(size)
		if pass.Remaining.IsZero() {
			pass.Status = types.OrderStatusFilled
			consumed++
		} else {
			pass.Status = types.OrderStatusPartiallyFilled
		}
		fills = append(fills, pair...)
		impacted = append(impacted, pass)
	}
	if consumed > 0 {
		s.market = s.market[consumed:]
	}

	// iterate the levels from the end, removing emptied levels from the
	// back of the slice keeps allocations down
	checkPrice := s.crossCheck(agg)
	idx := len(s.levels) - 1
	filled := !agg.Remaining.IsPositive()
	for !filled && idx >= 0 {
		if agg.HasPrice() && !checkPrice(s.levels[idx].price) {
			break
		}
		var (
			nfills  []*types.Fill
			nimpact []*types.Order
			err     error
		)
		filled, nfills, nimpact, err = s.levels[idx].uncross(agg, ff, tick)
		fills = append(fills, nfills...)
		impacted = append(impacted, nimpact...)
		if err != nil {
			return fills, impacted, err
		}
		if len(s.levels[idx].orders) == 0 {
			idx--
		}
	}

	// nil out the emptied price levels and resize the slice
	if idx < 0 || len(s.levels[idx].orders) > 0 {
		idx++
	}
	if idx < len(s.levels) {
		for i := idx; i < len(s.levels); i++ {
			s.levels[i] = nil
		}
		s.levels = s.levels[:idx]
	}

	return fills, impacted, nil
}

func (s *OrderBookSide) getLevels() []*PriceLevel {
	return s.levels
}

func (s *OrderBookSide) getOrderCount() int {
	count := len(s.market)
	for _, level := range s.levels {
		count += len(level.orders)
	}
	return count
}

func (s *OrderBookSide) getTotalVolume() num.Decimal {
	volume := num.Zero()
	for _, o := range s.market {
		volume = volume.Add(o.Remaining)
	}
	for _, level := range s.levels {
		volume = volume.Add(level.volume)
	}
	return volume
}
