package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

func dec(value string) num.Decimal {
	return num.MustDecimalFromString(value)
}

func validLimit() *Order {
	return &Order{
		ID:     "order-1",
		Symbol: "AAPL",
		Side:   SideBuy,
		Type:   OrderTypeLimit,
		Size:   dec("100"),
		Price:  dec("50"),
	}
}

func TestOrderValidate(t *testing.T) {
	require.NoError(t, validLimit().Validate())

	tests := []struct {
		name   string
		mutate func(o *Order)
		err    error
	}{
		{"missing id", func(o *Order) { o.ID = "" }, ErrInvalidOrderID},
		{"missing symbol", func(o *Order) { o.Symbol = "" }, ErrInvalidSymbol},
		{"missing side", func(o *Order) { o.Side = SideUnspecified }, ErrInvalidSide},
		{"zero size", func(o *Order) { o.Size = num.Zero() }, ErrInvalidSize},
		{"negative size", func(o *Order) { o.Size = dec("-1") }, ErrInvalidSize},
		{"limit without price", func(o *Order) { o.Price = num.Zero() }, ErrInvalidPrice},
		{"market with price", func(o *Order) { o.Type = OrderTypeMarket }, ErrInvalidPrice},
		{"missing type", func(o *Order) { o.Type = OrderTypeUnspecified }, ErrInvalidType},
		{"stop without trigger", func(o *Order) { o.Type = OrderTypeStop }, ErrInvalidTriggerPrice},
		{"trailing without trail", func(o *Order) { o.Type = OrderTypeTrailingStop }, ErrInvalidTrailAmount},
		{"bad tif", func(o *Order) { o.TimeInForce = TimeInForce(99) }, ErrInvalidTimeInForce},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := validLimit()
			tc.mutate(o)
			assert.ErrorIs(t, o.Validate(), tc.err)
		})
	}
}

func TestOrderValidateConditionals(t *testing.T) {
	stop := validLimit()
	stop.Type = OrderTypeStop
	stop.TriggerPrice = dec("55")
	require.NoError(t, stop.Validate())

	// a stop without a limit price is fine, it fires as a market order
	stop.Price = num.Zero()
	require.NoError(t, stop.Validate())

	trailing := validLimit()
	trailing.Type = OrderTypeTrailingStop
	trailing.Price = num.Zero()
	trailing.TrailAmount = dec("5")
	require.NoError(t, trailing.Validate())
}

func TestOrderClone(t *testing.T) {
	o := validLimit()
	o.Remaining = dec("40")

	cpy := o.Clone()
	cpy.Remaining = dec("0")
	cpy.Status = OrderStatusFilled

	assert.True(t, o.Remaining.Equal(dec("40")))
	assert.Equal(t, OrderStatusUnspecified, o.Status)
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideSell, SideBuy.Opposite())
	assert.Equal(t, SideBuy, SideSell.Opposite())
	assert.Equal(t, SideUnspecified, SideUnspecified.Opposite())
}

func TestParsers(t *testing.T) {
	side, err := ParseSide("buy")
	require.NoError(t, err)
	assert.Equal(t, SideBuy, side)
	_, err = ParseSide("long")
	assert.ErrorIs(t, err, ErrInvalidSide)

	typ, err := ParseOrderType("trailing_stop")
	require.NoError(t, err)
	assert.Equal(t, OrderTypeTrailingStop, typ)
	_, err = ParseOrderType("iceberg")
	assert.ErrorIs(t, err, ErrInvalidType)

	tif, err := ParseTimeInForce("")
	require.NoError(t, err)
	assert.Equal(t, TimeInForceUnspecified, tif)
	tif, err = ParseTimeInForce("fok")
	require.NoError(t, err)
	assert.Equal(t, TimeInForceFOK, tif)
	_, err = ParseTimeInForce("gtd")
	assert.ErrorIs(t, err, ErrInvalidTimeInForce)
}

func TestMarketDataValidate(t *testing.T) {
	md := MarketData{
		Symbol:    "AAPL",
		Timestamp: 1,
		Open:      dec("50"),
		High:      dec("51"),
		Low:       dec("49"),
		Close:     dec("50"),
		Volume:    dec("1000"),
	}
	require.NoError(t, md.Validate())

	bad := md
	bad.Symbol = ""
	assert.ErrorIs(t, bad.Validate(), ErrInvalidSymbol)

	bad = md
	bad.Low = dec("52")
	assert.ErrorIs(t, bad.Validate(), ErrInvalidPrice)

	bad = md
	bad.High = num.Zero()
	bad.Low = num.Zero()
	assert.ErrorIs(t, bad.Validate(), ErrInvalidPrice)
}

func TestFillNotional(t *testing.T) {
	f := Fill{Size: dec("10"), Price: dec("50.5")}
	assert.True(t, f.Notional().Equal(dec("505")))
}
