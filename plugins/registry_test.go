package plugins

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

func TestBuiltinsAreRegistered(t *testing.T) {
	_, ok := LookupMatchingEngine(DepthMatchingEngine)
	assert.True(t, ok)

	for _, name := range []string{FixedSlippage, VolumeRatioSlippage, NoSlippage} {
		_, ok := LookupSlippageModel(name)
		assert.True(t, ok, name)
	}
	for _, name := range []string{RateCommission, NoCommission} {
		_, ok := LookupCommissionModel(name)
		assert.True(t, ok, name)
	}
	for _, name := range []string{FixedLatency, NoLatency} {
		_, ok := LookupLatencyModel(name)
		assert.True(t, ok, name)
	}

	_, ok = LookupMatchingEngine("NoSuchEngine")
	assert.False(t, ok)

	assert.Contains(t, MatchingEngines(), DepthMatchingEngine)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	RegisterSlippageModel("test-dup", func(Params) (costs.SlippageModel, error) {
		return costs.NoSlippage{}, nil
	})
	assert.Panics(t, func() {
		RegisterSlippageModel("test-dup", func(Params) (costs.SlippageModel, error) {
			return costs.NoSlippage{}, nil
		})
	})
	assert.Panics(t, func() {
		RegisterLatencyModel("test-nil", nil)
	})
}

func TestParams(t *testing.T) {
	p := Params{
		"rate":  "0.001",
		"delay": "250ms",
		"bad":   "zzz",
	}

	rate, err := p.Decimal("rate", num.Zero())
	require.NoError(t, err)
	assert.True(t, rate.Equal(num.MustDecimalFromString("0.001")))

	// absent keys fall back
	min, err := p.Decimal("minimum", num.MustDecimalFromString("5"))
	require.NoError(t, err)
	assert.True(t, min.Equal(num.MustDecimalFromString("5")))

	_, err = p.Decimal("bad", num.Zero())
	assert.Error(t, err)

	delay, err := p.Duration("delay", 0)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, delay)

	_, err = p.Duration("bad", 0)
	assert.Error(t, err)
}

func TestBuiltinFactories(t *testing.T) {
	f, ok := LookupSlippageModel(FixedSlippage)
	require.True(t, ok)
	m, err := f(Params{"offset": "0.5"})
	require.NoError(t, err)
	assert.IsType(t, &costs.FixedSlippage{}, m)

	_, err = f(Params{"offset": "-1"})
	assert.ErrorIs(t, err, costs.ErrNegativeOffset)

	cf, ok := LookupCommissionModel(RateCommission)
	require.True(t, ok)
	cm, err := cf(Params{"rate": "0.001", "minimum": "1"})
	require.NoError(t, err)
	assert.IsType(t, &costs.RateCommission{}, cm)

	lf, ok := LookupLatencyModel(FixedLatency)
	require.True(t, ok)
	lm, err := lf(Params{"delay": "100ms"})
	require.NoError(t, err)
	assert.IsType(t, &costs.FixedLatency{}, lm)
}
