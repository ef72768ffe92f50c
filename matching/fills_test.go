package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/types"
)

func getTestOrderBookWithModels(t *testing.T, models costs.Models) *tstOB {
	t.Helper()
	tob := tstOB{
		log: logging.NewTestLogger(),
	}
	tob.OrderBook = NewOrderBook(tob.log, NewDefaultConfig(), market, models)
	return &tob
}

func TestFills_SlippageWorsensAggressorOnly(t *testing.T) {
	slip, err := costs.NewFixedSlippage(d("0.5"))
	require.NoError(t, err)
	book := getTestOrderBookWithModels(t, costs.Models{Slippage: slip})
	defer book.Finish()

	sell := limitOrder(market, types.SideSell, "100", "50")
	require.NoError(t, book.SubmitOrder(sell))
	_, err = book.OnTick(flatBar(market, 1, "50"))
	require.NoError(t, err)

	buy := limitOrder(market, types.SideBuy, "100", "50")
	require.NoError(t, book.SubmitOrder(buy))
	conf, err := book.OnTick(flatBar(market, 2, "50"))
	require.NoError(t, err)

	require.Len(t, conf.Fills, 2)
	aggFill, passFill := conf.Fills[0], conf.Fills[1]
	assert.Equal(t, buy.ID, aggFill.OrderID)
	assert.True(t, aggFill.Price.Equal(d("50.5")), "aggressor price %s", aggFill.Price)
	assert.Equal(t, sell.ID, passFill.OrderID)
	assert.True(t, passFill.Price.Equal(d("50")), "passive price %s", passFill.Price)
}

func TestFills_SellSlippageClampsAtZero(t *testing.T) {
	slip, err := costs.NewFixedSlippage(d("10"))
	require.NoError(t, err)
	book := getTestOrderBookWithModels(t, costs.Models{Slippage: slip})
	defer book.Finish()

	buyRest := limitOrder(market, types.SideBuy, "100", "5")
	require.NoError(t, book.SubmitOrder(buyRest))
	_, err = book.OnTick(flatBar(market, 1, "5"))
	require.NoError(t, err)

	sell := limitOrder(market, types.SideSell, "100", "5")
	require.NoError(t, book.SubmitOrder(sell))
	conf, err := book.OnTick(flatBar(market, 2, "5"))
	require.NoError(t, err)

	require.Len(t, conf.Fills, 2)
	aggFill := conf.Fills[0]
	assert.Equal(t, sell.ID, aggFill.OrderID)
	// 5 - 10 clamps at zero rather than going negative
	assert.True(t, aggFill.Price.IsZero(), "aggressor price %s", aggFill.Price)
}

func TestFills_CommissionRecordedNotFoldedIntoPrice(t *testing.T) {
	comm, err := costs.NewRateCommission(d("0.01"), d("0"))
	require.NoError(t, err)
	book := getTestOrderBookWithModels(t, costs.Models{Commission: comm})
	defer book.Finish()

	sell := limitOrder(market, types.SideSell, "10", "100")
	require.NoError(t, book.SubmitOrder(sell))
	_, err = book.OnTick(flatBar(market, 1, "100"))
	require.NoError(t, err)

	buy := limitOrder(market, types.SideBuy, "10", "100")
	require.NoError(t, book.SubmitOrder(buy))
	conf, err := book.OnTick(flatBar(market, 2, "100"))
	require.NoError(t, err)

	require.Len(t, conf.Fills, 2)
	for _, f := range conf.Fills {
		assert.True(t, f.Price.Equal(d("100")))
		// 0.01 * 10 * 100
		assert.True(t, f.Commission.Equal(d("10")), "commission %s", f.Commission)
	}
}

func TestFills_LatencyShiftsExecutionTimestamp(t *testing.T) {
	lat, err := costs.NewFixedLatency(time.Second)
	require.NoError(t, err)
	book := getTestOrderBookWithModels(t, costs.Models{Latency: lat})
	defer book.Finish()

	sell := limitOrder(market, types.SideSell, "10", "100")
	require.NoError(t, book.SubmitOrder(sell))
	tick1 := flatBar(market, 1000, "100")
	_, err = book.OnTick(tick1)
	require.NoError(t, err)

	buy := limitOrder(market, types.SideBuy, "10", "100")
	require.NoError(t, book.SubmitOrder(buy))
	tick2 := flatBar(market, 2000, "100")
	conf, err := book.OnTick(tick2)
	require.NoError(t, err)

	require.Len(t, conf.Fills, 2)
	for _, f := range conf.Fills {
		assert.Equal(t, int64(2000)+time.Second.Nanoseconds(), f.Timestamp)
	}
}

func TestFills_FailingModelAbortsTheTick(t *testing.T) {
	// zero bar volume makes the volume-ratio model fail
	slip, err := costs.NewVolumeRatioSlippage(d("0.1"))
	require.NoError(t, err)
	book := getTestOrderBookWithModels(t, costs.Models{Slippage: slip})
	defer book.Finish()

	sell := limitOrder(market, types.SideSell, "10", "100")
	require.NoError(t, book.SubmitOrder(sell))
	_, err = book.OnTick(bar(market, 1, "100", "100", "100", "100", "0"))
	require.NoError(t, err)

	buy := limitOrder(market, types.SideBuy, "10", "100")
	require.NoError(t, book.SubmitOrder(buy))
	_, err = book.OnTick(bar(market, 2, "100", "100", "100", "100", "0"))
	assert.ErrorIs(t, err, costs.ErrZeroBarVolume)
}
