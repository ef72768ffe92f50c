package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kay-ou/SimTradeLab-sub001/types"
)

func TestTimeInForce_DefaultsToGTC(t *testing.T) {
	book := getTestOrderBook(t, market)
	defer book.Finish()

	o := limitOrder(market, types.SideBuy, "100", "50")
	require.NoError(t, book.SubmitOrder(o))
	assert.Equal(t, types.TimeInForceGTC, o.TimeInForce)
}

func TestTimeInForce_IOCPartialFillStandsRemainderCancelled(t *testing.T) {
	book := getTestOrderBook(t, market)
	defer book.Finish()

	sell := limitOrder(market, types.SideSell, "50", "100")
	require.NoError(t, book.SubmitOrder(sell))
	_, err := book.OnTick(flatBar(market, 1, "100"))
	require.NoError(t, err)

	ioc := limitOrder(market, types.SideBuy, "100", "100")
	ioc.TimeInForce = types.TimeInForceIOC
	require.NoError(t, book.SubmitOrder(ioc))
	conf, err := book.OnTick(flatBar(market, 2, "100"))
	require.NoError(t, err)

	// the partial fill stands
	require.Len(t, conf.Fills, 2)
	assert.True(t, conf.Fills[0].Size.Equal(d("50")))

	// the remainder is cancelled and never rests
	assert.Equal(t, types.OrderStatusCancelled, ioc.Status)
	assert.True(t, ioc.Remaining.Equal(d("50")))
	assert.Equal(t, 0, book.getNumberOfBuyLevels())
}

func TestTimeInForce_IOCNoCounterVolume(t *testing.T) {
	book := getTestOrderBook(t, market)
	defer book.Finish()

	ioc := limitOrder(market, types.SideBuy, "100", "50")
	ioc.TimeInForce = types.TimeInForceIOC
	require.NoError(t, book.SubmitOrder(ioc))
	conf, err := book.OnTick(flatBar(market, 1, "50"))
	require.NoError(t, err)

	assert.Empty(t, conf.Fills)
	assert.Equal(t, types.OrderStatusCancelled, ioc.Status)
	assert.True(t, ioc.Remaining.Equal(d("100")))
}

func TestTimeInForce_FOKKilledLeavesBookUntouched(t *testing.T) {
	book := getTestOrderBook(t, market)
	defer book.Finish()

	sell := limitOrder(market, types.SideSell, "50", "100")
	require.NoError(t, book.SubmitOrder(sell))
	_, err := book.OnTick(flatBar(market, 1, "100"))
	require.NoError(t, err)

	fok := limitOrder(market, types.SideBuy, "100", "100")
	fok.TimeInForce = types.TimeInForceFOK
	require.NoError(t, book.SubmitOrder(fok))
	conf, err := book.OnTick(flatBar(market, 2, "100"))
	require.NoError(t, err)

	// killed outright, zero fills
	assert.Empty(t, conf.Fills)
	assert.Equal(t, types.OrderStatusCancelled, fok.Status)
	assert.True(t, fok.Remaining.Equal(d("100")))

	// the resting side was not touched at all
	assert.Equal(t, types.OrderStatusActive, sell.Status)
	assert.True(t, sell.Remaining.Equal(d("50")))
	assert.True(t, book.getTotalSellVolume().Equal(d("50")))
}

func TestTimeInForce_FOKFillsAcrossLevels(t *testing.T) {
	book := getTestOrderBook(t, market)
	defer book.Finish()

	s1 := limitOrder(market, types.SideSell, "50", "100")
	s2 := limitOrder(market, types.SideSell, "60", "101")
	require.NoError(t, book.SubmitOrder(s1))
	require.NoError(t, book.SubmitOrder(s2))
	_, err := book.OnTick(flatBar(market, 1, "100"))
	require.NoError(t, err)

	fok := limitOrder(market, types.SideBuy, "100", "101")
	fok.TimeInForce = types.TimeInForceFOK
	require.NoError(t, book.SubmitOrder(fok))
	conf, err := book.OnTick(flatBar(market, 2, "100"))
	require.NoError(t, err)

	require.Len(t, conf.Fills, 4)
	assert.Equal(t, types.OrderStatusFilled, fok.Status)
	assert.True(t, fok.Remaining.IsZero())

	assert.Equal(t, types.OrderStatusFilled, s1.Status)
	assert.Equal(t, types.OrderStatusPartiallyFilled, s2.Status)
	assert.True(t, s2.Remaining.Equal(d("10")))
}

func TestTimeInForce_FOKPriceLimitBoundsPreScan(t *testing.T) {
	book := getTestOrderBook(t, market)
	defer book.Finish()

	// plenty of volume, but above the aggressor's limit
	s1 := limitOrder(market, types.SideSell, "50", "100")
	s2 := limitOrder(market, types.SideSell, "200", "105")
	require.NoError(t, book.SubmitOrder(s1))
	require.NoError(t, book.SubmitOrder(s2))
	_, err := book.OnTick(flatBar(market, 1, "100"))
	require.NoError(t, err)

	fok := limitOrder(market, types.SideBuy, "100", "100")
	fok.TimeInForce = types.TimeInForceFOK
	require.NoError(t, book.SubmitOrder(fok))
	conf, err := book.OnTick(flatBar(market, 2, "100"))
	require.NoError(t, err)

	assert.Empty(t, conf.Fills)
	assert.Equal(t, types.OrderStatusCancelled, fok.Status)
	assert.True(t, s1.Remaining.Equal(d("50")))
	assert.True(t, s2.Remaining.Equal(d("200")))
}
