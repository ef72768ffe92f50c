package types

import "errors"

var (
	// ErrInvalidOrderID signals an empty or duplicate order ID.
	ErrInvalidOrderID = errors.New("invalid order id")
	// ErrInvalidSymbol signals a missing symbol on an order or tick.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidSide signals a missing or unknown order side.
	ErrInvalidSide = errors.New("invalid side")
	// ErrInvalidType signals a missing or unknown order type.
	ErrInvalidType = errors.New("invalid order type")
	// ErrInvalidSize signals a non-positive order size.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidRemainingSize signals a remaining size outside [0, size].
	ErrInvalidRemainingSize = errors.New("invalid remaining size")
	// ErrInvalidPrice signals a missing price on a limit order.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidTriggerPrice signals a missing trigger price on a stop order.
	ErrInvalidTriggerPrice = errors.New("invalid trigger price")
	// ErrInvalidTrailAmount signals a non-positive trail amount on a
	// trailing stop order.
	ErrInvalidTrailAmount = errors.New("invalid trail amount")
	// ErrInvalidTimeInForce signals an unknown time in force value.
	ErrInvalidTimeInForce = errors.New("invalid time in force")
	// ErrOrderNotFound signals the order is not known to the book.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderTerminal signals an attempt to mutate a filled or cancelled
	// order.
	ErrOrderTerminal = errors.New("order in terminal state")
	// ErrTickOutOfSequence signals market data arriving with a timestamp
	// earlier than data already processed.
	ErrTickOutOfSequence = errors.New("market data out of sequence")
)
