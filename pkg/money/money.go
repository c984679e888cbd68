// Package money converts between stored minor units and the two-decimal
// amounts used on the wire.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

const places = 2

var (
	ErrPrecision  = errors.New("amount has more than two decimal places")
	ErrOutOfRange = errors.New("amount is out of range")
)

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

func FromMinor(v int64) decimal.Decimal {
	return decimal.New(v, -places)
}

func Format(v int64) string {
	return FromMinor(v).StringFixed(places)
}

func ToMinor(d decimal.Decimal) (int64, error) {
	scaled := d.Shift(places)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, ErrPrecision
	}
	if scaled.GreaterThan(maxMinor) || scaled.LessThan(minMinor) {
		return 0, ErrOutOfRange
	}
	return scaled.IntPart(), nil
}
