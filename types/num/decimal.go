package num

import (
	"github.com/shopspring/decimal"
)

// Decimal is an arbitrary precision decimal. All prices, quantities and
// offsets in the engine use it, binary floats would produce false or missed
// crossings at boundary prices.
type Decimal = decimal.Decimal

// Zero returns a decimal with a value of 0.
func Zero() Decimal {
	return decimal.Zero
}

// NewDecimalFromFloat returns a decimal from a float64.
func NewDecimalFromFloat(f float64) Decimal {
	return decimal.NewFromFloat(f)
}

// NewDecimalFromInt64 returns a decimal from an int64.
func NewDecimalFromInt64(i int64) Decimal {
	return decimal.NewFromInt(i)
}

// DecimalFromString parses a decimal from its string representation.
func DecimalFromString(s string) (Decimal, error) {
	return decimal.NewFromString(s)
}

// MustDecimalFromString parses a decimal from its string representation and
// panics on invalid input. For constants and tests.
func MustDecimalFromString(s string) Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MinD returns the smallest of the two decimals.
func MinD(a, b Decimal) Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// MaxD returns the largest of the two decimals.
func MaxD(a, b Decimal) Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
