package matching

import (
	"fmt"
	"testing"

	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/types"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

type tstOB struct {
	*OrderBook
	log *logging.Logger
}

func (t *tstOB) Finish() {
	t.log.AtExit()
}

func getTestOrderBook(t *testing.T, symbol string) *tstOB {
	t.Helper()
	tob := tstOB{
		log: logging.NewTestLogger(),
	}
	tob.OrderBook = NewOrderBook(tob.log, NewDefaultConfig(), symbol, costs.Models{})

	// turn on the debug logging so more code paths run under test
	tob.OrderBook.LogPriceLevelsDebug = true
	tob.OrderBook.LogRemovedOrdersDebug = true
	return &tob
}

func d(value string) num.Decimal {
	return num.MustDecimalFromString(value)
}

var orderSeq int

func nextOrderID() string {
	orderSeq++
	return fmt.Sprintf("order-%03d", orderSeq)
}

func limitOrder(symbol string, side types.Side, size, price string) *types.Order {
	return &types.Order{
		ID:     nextOrderID(),
		Symbol: symbol,
		Side:   side,
		Type:   types.OrderTypeLimit,
		Size:   d(size),
		Price:  d(price),
	}
}

func marketOrder(symbol string, side types.Side, size string) *types.Order {
	return &types.Order{
		ID:     nextOrderID(),
		Symbol: symbol,
		Side:   side,
		Type:   types.OrderTypeMarket,
		Size:   d(size),
	}
}

func stopOrder(symbol string, side types.Side, size, trigger, price string) *types.Order {
	o := &types.Order{
		ID:           nextOrderID(),
		Symbol:       symbol,
		Side:         side,
		Type:         types.OrderTypeStop,
		Size:         d(size),
		TriggerPrice: d(trigger),
	}
	if price != "" {
		o.Price = d(price)
	}
	return o
}

func trailingStopOrder(symbol string, side types.Side, size, trail string) *types.Order {
	return &types.Order{
		ID:          nextOrderID(),
		Symbol:      symbol,
		Side:        side,
		Type:        types.OrderTypeTrailingStop,
		Size:        d(size),
		TrailAmount: d(trail),
	}
}

func bar(symbol string, ts int64, open, high, low, close, volume string) types.MarketData {
	return types.MarketData{
		Symbol:    symbol,
		Timestamp: ts,
		Open:      d(open),
		High:      d(high),
		Low:       d(low),
		Close:     d(close),
		Volume:    d(volume),
	}
}

// flatBar is a bar where every price is the same, convenient when a test
// only cares about crossing resting orders.
func flatBar(symbol string, ts int64, price string) types.MarketData {
	return bar(symbol, ts, price, price, price, price, "10000")
}

func (ob *OrderBook) getNumberOfBuyLevels() int {
	return len(ob.buy.getLevels())
}

func (ob *OrderBook) getNumberOfSellLevels() int {
	return len(ob.sell.getLevels())
}

func (ob *OrderBook) getTotalBuyVolume() num.Decimal {
	return ob.buy.getTotalVolume()
}

func (ob *OrderBook) getTotalSellVolume() num.Decimal {
	return ob.sell.getTotalVolume()
}
