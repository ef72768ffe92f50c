// Package plugins resolves the configured matching engine and cost model
// names into constructors. Built-in implementations register themselves at
// package load, a host can add its own before starting the orchestrator.
package plugins

import (
	"sort"
	"sync"
	"time"

	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/matching"
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// Params carries the model parameters from the configuration file to a
// factory, all values kept as strings the factory parses itself.
type Params map[string]string

// Decimal returns the parsed decimal for the key, or the fallback when the
// key is absent.
func (p Params) Decimal(key string, fallback num.Decimal) (num.Decimal, error) {
	v, ok := p[key]
	if !ok {
		return fallback, nil
	}
	return num.DecimalFromString(v)
}

// Duration returns the parsed duration for the key, or the fallback when
// the key is absent.
func (p Params) Duration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := p[key]
	if !ok {
		return fallback, nil
	}
	return time.ParseDuration(v)
}

// MatchingEngineFactory builds a matching engine for one run.
type MatchingEngineFactory func(log *logging.Logger, cfg matching.Config, models costs.Models) matching.MatchingEngine

// SlippageModelFactory builds a slippage model from its parameters.
type SlippageModelFactory func(params Params) (costs.SlippageModel, error)

// CommissionModelFactory builds a commission model from its parameters.
type CommissionModelFactory func(params Params) (costs.CommissionModel, error)

// LatencyModelFactory builds a latency model from its parameters.
type LatencyModelFactory func(params Params) (costs.LatencyModel, error)

var (
	mu          sync.RWMutex
	engines     = map[string]MatchingEngineFactory{}
	slippages   = map[string]SlippageModelFactory{}
	commissions = map[string]CommissionModelFactory{}
	latencies   = map[string]LatencyModelFactory{}
)

// RegisterMatchingEngine makes a matching engine available by name.
// Registering twice under the same name, or a nil factory, panics.
func RegisterMatchingEngine(name string, factory MatchingEngineFactory) {
	mu.Lock()
	defer mu.Unlock()
	if factory == nil {
		panic("plugins: RegisterMatchingEngine factory is nil")
	}
	if _, dup := engines[name]; dup {
		panic("plugins: RegisterMatchingEngine called twice for " + name)
	}
	engines[name] = factory
}

// RegisterSlippageModel makes a slippage model available by name.
func RegisterSlippageModel(name string, factory SlippageModelFactory) {
	mu.Lock()
	defer mu.Unlock()
	if factory == nil {
		panic("plugins: RegisterSlippageModel factory is nil")
	}
	if _, dup := slippages[name]; dup {
		panic("plugins: RegisterSlippageModel called twice for " + name)
	}
	slippages[name] = factory
}

// RegisterCommissionModel makes a commission model available by name.
func RegisterCommissionModel(name string, factory CommissionModelFactory) {
	mu.Lock()
	defer mu.Unlock()
	if factory == nil {
		panic("plugins: RegisterCommissionModel factory is nil")
	}
	if _, dup := commissions[name]; dup {
		panic("plugins: RegisterCommissionModel called twice for " + name)
	}
	commissions[name] = factory
}

// RegisterLatencyModel makes a latency model available by name.
func RegisterLatencyModel(name string, factory LatencyModelFactory) {
	mu.Lock()
	defer mu.Unlock()
	if factory == nil {
		panic("plugins: RegisterLatencyModel factory is nil")
	}
	if _, dup := latencies[name]; dup {
		panic("plugins: RegisterLatencyModel called twice for " + name)
	}
	latencies[name] = factory
}

// LookupMatchingEngine returns the factory registered under the name.
func LookupMatchingEngine(name string) (MatchingEngineFactory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := engines[name]
	return f, ok
}

// LookupSlippageModel returns the factory registered under the name.
func LookupSlippageModel(name string) (SlippageModelFactory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := slippages[name]
	return f, ok
}

// LookupCommissionModel returns the factory registered under the name.
func LookupCommissionModel(name string) (CommissionModelFactory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := commissions[name]
	return f, ok
}

// LookupLatencyModel returns the factory registered under the name.
func LookupLatencyModel(name string) (LatencyModelFactory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := latencies[name]
	return f, ok
}

// MatchingEngines returns a sorted list of the registered engine names.
func MatchingEngines() []string {
	mu.RLock()
	defer mu.RUnlock()
	var list []string
	for name := range engines {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
