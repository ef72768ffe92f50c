package execution

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/matching"
	"github.com/kay-ou/SimTradeLab-sub001/metrics"
	"github.com/kay-ou/SimTradeLab-sub001/plugins"
	"github.com/kay-ou/SimTradeLab-sub001/types"
)

var (
	// ErrEngineNotStarted is returned when an operation is invoked before Start.
	ErrEngineNotStarted = errors.New("execution engine not started")

	// ErrUnknownMatchingEngine is returned by Start when the configured
	// matching engine name has no registered factory.
	ErrUnknownMatchingEngine = errors.New("unknown matching engine")
)

// Statistics summarises a completed (or in-flight) replay.
type Statistics struct {
	TotalOrders  int
	FilledOrders int
	TotalFills   int
	FillRate     float64
}

// Engine drives the whole backtest: it resolves the configured plugins,
// stamps and forwards orders, and feeds each market data tick to the
// matching engine.
type Engine struct {
	Config
	log *logging.Logger

	matchingCfg matching.Config
	matcher     matching.MatchingEngine
	models      costs.Models
	pluginInfo  map[string]string

	started     bool
	currentTime int64
	lastTick    map[string]int64
}

// NewEngine returns a stopped execution engine, plugins are resolved on Start.
func NewEngine(log *logging.Logger, cfg Config, matchingCfg matching.Config) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Engine{
		Config:      cfg,
		log:         log,
		matchingCfg: matchingCfg,
		pluginInfo:  map[string]string{},
		lastTick:    map[string]int64{},
	}
}

// ReloadConf updates the engine configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// Start resolves the configured plugins and builds the matching engine.
// A missing matching engine is fatal, a missing or misconfigured cost model
// degrades to the corresponding no-op model with a warning.
func (e *Engine) Start() error {
	if e.started {
		return nil
	}

	mf, ok := plugins.LookupMatchingEngine(e.MatchingEngine)
	if !ok {
		return errors.Wrap(ErrUnknownMatchingEngine, e.MatchingEngine)
	}
	e.pluginInfo["matching_engine"] = e.MatchingEngine

	params := plugins.Params(e.ModelParams)
	e.models = costs.Models{
		Slippage:   e.resolveSlippage(params),
		Commission: e.resolveCommission(params),
		Latency:    e.resolveLatency(params),
	}

	e.matcher = mf(e.log, e.matchingCfg, e.models)
	e.started = true
	e.log.Info("execution engine started",
		logging.String("matching-engine", e.MatchingEngine),
		logging.String("slippage-model", e.pluginInfo["slippage_model"]),
		logging.String("commission-model", e.pluginInfo["commission_model"]),
		logging.String("latency-model", e.pluginInfo["latency_model"]),
	)
	return nil
}

func (e *Engine) resolveSlippage(params plugins.Params) costs.SlippageModel {
	name := e.SlippageModel
	if f, ok := plugins.LookupSlippageModel(name); ok {
		m, err := f(params)
		if err == nil {
			e.pluginInfo["slippage_model"] = name
			return m
		}
		e.log.Warn("slippage model rejected its parameters, running without slippage",
			logging.String("model", name), logging.Error(err))
	} else {
		e.log.Warn("slippage model not registered, running without slippage",
			logging.String("model", name))
	}
	e.pluginInfo["slippage_model"] = plugins.NoSlippage
	return costs.NoSlippage{}
}

func (e *Engine) resolveCommission(params plugins.Params) costs.CommissionModel {
	name := e.CommissionModel
	if f, ok := plugins.LookupCommissionModel(name); ok {
		m, err := f(params)
		if err == nil {
			e.pluginInfo["commission_model"] = name
			return m
		}
		e.log.Warn("commission model rejected its parameters, running without commission",
			logging.String("model", name), logging.Error(err))
	} else {
		e.log.Warn("commission model not registered, running without commission",
			logging.String("model", name))
	}
	e.pluginInfo["commission_model"] = plugins.NoCommission
	return costs.NoCommission{}
}

func (e *Engine) resolveLatency(params plugins.Params) costs.LatencyModel {
	name := e.LatencyModel
	if f, ok := plugins.LookupLatencyModel(name); ok {
		m, err := f(params)
		if err == nil {
			e.pluginInfo["latency_model"] = name
			return m
		}
		e.log.Warn("latency model rejected its parameters, running without latency",
			logging.String("model", name), logging.Error(err))
	} else {
		e.log.Warn("latency model not registered, running without latency",
			logging.String("model", name))
	}
	e.pluginInfo["latency_model"] = plugins.NoLatency
	return costs.NoLatency{}
}

// Stop shuts the engine down, further operations fail with ErrEngineNotStarted.
func (e *Engine) Stop() {
	if !e.started {
		return
	}
	e.started = false
	e.log.Info("execution engine stopped")
}

// SubmitOrder validates and hands an order to the matching engine. Orders
// without a creation time are stamped with the engine's current time.
func (e *Engine) SubmitOrder(order *types.Order) error {
	if !e.started {
		return ErrEngineNotStarted
	}
	timer := metrics.NewTimeCounter("execution", "SubmitOrder")
	defer timer.EngineTimeCounterAdd()

	if order.CreatedAt == 0 {
		order.CreatedAt = e.currentTime
	}
	if err := e.matcher.SubmitOrder(order); err != nil {
		metrics.OrderCounterInc(false)
		e.log.Debug("order rejected",
			logging.OrderWithTag(*order, "rejected"), logging.Error(err))
		return err
	}
	metrics.OrderCounterInc(true)
	metrics.OpenOrdersGaugeSet(e.openOrders())
	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("order submitted", logging.Order(*order))
	}
	return nil
}

// openOrders counts the orders still working in the matching engine.
func (e *Engine) openOrders() int {
	n := 0
	for _, o := range e.matcher.Orders() {
		if !o.Status.Terminal() {
			n++
		}
	}
	return n
}

// CancelOrder cancels a live order, reporting whether anything was cancelled.
func (e *Engine) CancelOrder(id string) bool {
	if !e.started {
		return false
	}
	o, err := e.matcher.CancelOrder(id)
	if err != nil {
		e.log.Debug("cancel refused",
			logging.String("order-id", id), logging.Error(err))
		return false
	}
	metrics.OpenOrdersGaugeSet(e.openOrders())
	if e.log.GetLevel() == logging.DebugLevel {
		e.log.Debug("order cancelled", logging.Order(*o))
	}
	return true
}

// UpdateMarketData feeds one tick into the matching engine. Ticks for a
// symbol must arrive with non-decreasing timestamps.
func (e *Engine) UpdateMarketData(tick types.MarketData) (*types.MatchConfirmation, error) {
	if !e.started {
		return nil, ErrEngineNotStarted
	}
	timer := metrics.NewTimeCounter("execution", "UpdateMarketData")
	defer timer.EngineTimeCounterAdd()

	if err := tick.Validate(); err != nil {
		return nil, err
	}
	if last, ok := e.lastTick[tick.Symbol]; ok && tick.Timestamp < last {
		e.log.Warn("tick out of sequence",
			logging.String("symbol", tick.Symbol),
			logging.Int64("tick-timestamp", tick.Timestamp),
			logging.Int64("last-timestamp", last),
		)
		return nil, types.ErrTickOutOfSequence
	}
	e.lastTick[tick.Symbol] = tick.Timestamp
	if tick.Timestamp > e.currentTime {
		e.currentTime = tick.Timestamp
	}

	conf, err := e.matcher.OnTick(tick)
	if err != nil {
		return nil, err
	}
	metrics.FillCounterAdd(len(conf.Fills))
	metrics.OpenOrdersGaugeSet(e.openOrders())
	return conf, nil
}

// GetOrders returns a copy of every order the engine has seen, newest last.
func (e *Engine) GetOrders() []*types.Order {
	if e.matcher == nil {
		return nil
	}
	orders := e.matcher.Orders()
	out := make([]*types.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Clone())
	}
	return out
}

// GetFills returns a copy of every fill produced so far, in execution order.
func (e *Engine) GetFills() []*types.Fill {
	if e.matcher == nil {
		return nil
	}
	fills := e.matcher.Fills()
	out := make([]*types.Fill, 0, len(fills))
	for _, f := range fills {
		out = append(out, f.Clone())
	}
	return out
}

// GetStatistics summarises the run so far. The fill rate counts fully
// filled orders against every order accepted.
func (e *Engine) GetStatistics() Statistics {
	stats := Statistics{}
	if e.matcher == nil {
		return stats
	}
	orders := e.matcher.Orders()
	stats.TotalOrders = len(orders)
	for _, o := range orders {
		if o.Status == types.OrderStatusFilled {
			stats.FilledOrders++
		}
	}
	stats.TotalFills = len(e.matcher.Fills())
	if stats.TotalOrders > 0 {
		stats.FillRate = float64(stats.FilledOrders) / float64(stats.TotalOrders)
	}
	return stats
}

// GetPluginInfo reports which plugin was resolved for each role.
func (e *Engine) GetPluginInfo() map[string]string {
	out := make(map[string]string, len(e.pluginInfo))
	for k, v := range e.pluginInfo {
		out[k] = v
	}
	return out
}

// Symbols returns the symbols the engine has seen ticks for, sorted.
func (e *Engine) Symbols() []string {
	out := make([]string, 0, len(e.lastTick))
	for s := range e.lastTick {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
