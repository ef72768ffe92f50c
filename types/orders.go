package types

import (
	"github.com/kay-ou/SimTradeLab-sub001/types/num"
)

// Side of the book an order sits on.
type Side int8

const (
	SideUnspecified Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unspecified"
	}
}

// ParseSide parses a side from its string representation.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	default:
		return SideUnspecified, ErrInvalidSide
	}
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	switch s {
	case SideBuy:
		return SideSell
	case SideSell:
		return SideBuy
	default:
		return SideUnspecified
	}
}

// OrderType determines how and when an order becomes tradable.
type OrderType int8

const (
	OrderTypeUnspecified OrderType = iota
	OrderTypeLimit
	OrderTypeMarket
	OrderTypeStop
	OrderTypeTrailingStop
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeLimit:
		return "limit"
	case OrderTypeMarket:
		return "market"
	case OrderTypeStop:
		return "stop"
	case OrderTypeTrailingStop:
		return "trailing_stop"
	default:
		return "unspecified"
	}
}

// ParseOrderType parses an order type from its string representation.
func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "limit":
		return OrderTypeLimit, nil
	case "market":
		return OrderTypeMarket, nil
	case "stop":
		return OrderTypeStop, nil
	case "trailing_stop":
		return OrderTypeTrailingStop, nil
	default:
		return OrderTypeUnspecified, ErrInvalidType
	}
}

// Conditional reports whether the order needs a trigger before it can trade.
func (t OrderType) Conditional() bool {
	return t == OrderTypeStop || t == OrderTypeTrailingStop
}

// TimeInForce determines what happens to the unmatched remainder of an
// order after a matching attempt.
type TimeInForce int8

const (
	// TimeInForceUnspecified is normalised to GTC at submission.
	TimeInForceUnspecified TimeInForce = iota
	TimeInForceGTC
	TimeInForceIOC
	TimeInForceFOK
)

func (t TimeInForce) String() string {
	switch t {
	case TimeInForceGTC:
		return "gtc"
	case TimeInForceIOC:
		return "ioc"
	case TimeInForceFOK:
		return "fok"
	default:
		return "unspecified"
	}
}

// ParseTimeInForce parses a time in force from its string representation.
// The empty string maps to unspecified, which submission normalises to GTC.
func ParseTimeInForce(s string) (TimeInForce, error) {
	switch s {
	case "":
		return TimeInForceUnspecified, nil
	case "gtc":
		return TimeInForceGTC, nil
	case "ioc":
		return TimeInForceIOC, nil
	case "fok":
		return TimeInForceFOK, nil
	default:
		return TimeInForceUnspecified, ErrInvalidTimeInForce
	}
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus int8

const (
	OrderStatusUnspecified OrderStatus = iota
	// OrderStatusPending - conditional order waiting for its trigger.
	OrderStatusPending
	// OrderStatusActive - tradable, resting on or heading into the book.
	OrderStatusActive
	OrderStatusPartiallyFilled
	OrderStatusFilled
	OrderStatusCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusActive:
		return "active"
	case OrderStatusPartiallyFilled:
		return "partially_filled"
	case OrderStatusFilled:
		return "filled"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unspecified"
	}
}

// Terminal reports whether the status is final. Terminal orders are off the
// book and immutable.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusFilled || s == OrderStatusCancelled
}

// Order is one trading instruction and its execution state. The book owns
// the only mutable instance, callers get clones.
type Order struct {
	ID          string
	Symbol      string
	Side        Side
	Type        OrderType
	TimeInForce TimeInForce

	// Size never changes after submission, Remaining counts down as fills
	// are produced. Size.Sub(Remaining) always equals the summed size of
	// the order's fills.
	Size      num.Decimal
	Remaining num.Decimal

	// Price is required for limit orders and optional for stop orders (a
	// stop carrying a price activates as a limit order).
	Price num.Decimal
	// TriggerPrice arms stop orders.
	TriggerPrice num.Decimal
	// TrailAmount is the trigger offset for trailing stops.
	TrailAmount num.Decimal
	// TrailingRef is the best favourable price seen since submission. It
	// only ever moves in the direction favourable to the stop.
	TrailingRef num.Decimal

	Status    OrderStatus
	CreatedAt int64
}

// HasPrice reports whether the order carries a limit price. Orders without
// one match at the resting counter-order's price.
func (o *Order) HasPrice() bool {
	return o.Price.IsPositive()
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	cpy := *o
	return &cpy
}

// Validate sanity-checks a new order before it is accepted.
func (o *Order) Validate() error {
	if o.ID == "" {
		return ErrInvalidOrderID
	}
	if o.Symbol == "" {
		return ErrInvalidSymbol
	}
	if o.Side != SideBuy && o.Side != SideSell {
		return ErrInvalidSide
	}
	if !o.Size.IsPositive() {
		return ErrInvalidSize
	}
	switch o.TimeInForce {
	case TimeInForceUnspecified, TimeInForceGTC, TimeInForceIOC, TimeInForceFOK:
	default:
		return ErrInvalidTimeInForce
	}
	switch o.Type {
	case OrderTypeLimit:
		if !o.Price.IsPositive() {
			return ErrInvalidPrice
		}
	case OrderTypeMarket:
		if !o.Price.IsZero() {
			return ErrInvalidPrice
		}
	case OrderTypeStop:
		if !o.TriggerPrice.IsPositive() {
			return ErrInvalidTriggerPrice
		}
	case OrderTypeTrailingStop:
		if !o.TrailAmount.IsPositive() {
			return ErrInvalidTrailAmount
		}
	default:
		return ErrInvalidType
	}
	return nil
}

// MatchConfirmation is the outcome of one matching pass over a tick: the
// fills produced and every order whose state changed during the pass.
type MatchConfirmation struct {
	Fills          []*Fill
	OrdersAffected []*Order
}
