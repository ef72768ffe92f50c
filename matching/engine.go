package matching

import (
	"sort"

	"github.com/kay-ou/SimTradeLab-sub001/costs"
	"github.com/kay-ou/SimTradeLab-sub001/logging"
	"github.com/kay-ou/SimTradeLab-sub001/types"
)

// MatchingEngine is the matching core surface the orchestrator drives. One
// engine instance serves one backtest run.
type MatchingEngine interface {
	SubmitOrder(order *types.Order) error
	CancelOrder(id string) (*types.Order, error)
	OnTick(tick types.MarketData) (*types.MatchConfirmation, error)
	Orders() []*types.Order
	Fills() []*types.Fill
	ReloadConf(cfg Config)
}

// Engine is the depth matching engine: one price-time priority order book
// per symbol, books created lazily on first use.
type Engine struct {
	log    *logging.Logger
	cfg    Config
	models costs.Models

	books      map[string]*OrderBook
	symbolByID map[string]string

	fills []*types.Fill
}

// NewEngine returns a matching engine with the given cost models injected
// into every book it creates.
func NewEngine(log *logging.Logger, cfg Config, models costs.Models) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	return &Engine{
		log:        log,
		cfg:        cfg,
		models:     models,
		books:      map[string]*OrderBook{},
		symbolByID: map[string]string{},
	}
}

// ReloadConf updates the engine and every live book.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()))
		e.log.SetLevel(cfg.Level.Get())
	}
	e.cfg = cfg
	for _, book := range e.books {
		book.ReloadConf(cfg)
	}
}

func (e *Engine) book(symbol string) *OrderBook {
	book, exists := e.books[symbol]
	if !exists {
		book = NewOrderBook(e.log, e.cfg, symbol, e.models)
		e.books[symbol] = book
	}
	return book
}

// SubmitOrder stores the order with the book for its symbol.
func (e *Engine) SubmitOrder(order *types.Order) error {
	if order.ID != "" {
		if _, exists := e.symbolByID[order.ID]; exists {
			return types.ErrInvalidOrderID
		}
	}
	if err := e.book(order.Symbol).SubmitOrder(order); err != nil {
		return err
	}
	e.symbolByID[order.ID] = order.Symbol
	return nil
}

// CancelOrder cancels the order wherever its book currently holds it.
func (e *Engine) CancelOrder(id string) (*types.Order, error) {
	symbol, exists := e.symbolByID[id]
	if !exists {
		return nil, types.ErrOrderNotFound
	}
	return e.books[symbol].CancelOrder(id)
}

// OnTick hands the observation to the symbol's book. A tick for a symbol
// without orders is a no-op.
func (e *Engine) OnTick(tick types.MarketData) (*types.MatchConfirmation, error) {
	book, exists := e.books[tick.Symbol]
	if !exists {
		return &types.MatchConfirmation{}, nil
	}
	conf, err := book.OnTick(tick)
	if conf != nil {
		e.fills = append(e.fills, conf.Fills...)
	}
	return conf, err
}

// Orders returns every order across all books, in submission order per
// book, books in symbol order.
func (e *Engine) Orders() []*types.Order {
	symbols := make([]string, 0, len(e.books))
	for symbol := range e.books {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var orders []*types.Order
	for _, symbol := range symbols {
		orders = append(orders, e.books[symbol].Orders()...)
	}
	return orders
}

// Fills returns every fill produced by the run, in execution order.
func (e *Engine) Fills() []*types.Fill {
	return e.fills
}
