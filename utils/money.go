package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyExponents lists currencies whose minor unit is not 1/100
var currencyExponents = map[string]int32{
	"JPY": 0,
	"KRW": 0,
	"BHD": 3,
	"KWD": 3,
}

func exponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// FormatMinor renders an integer minor-unit amount as a fixed-point major-unit string
func FormatMinor(amount int64, currency string) string {
	exp := exponent(currency)
	return decimal.New(amount, -exp).StringFixed(exp)
}

// ParseMajor converts a major-unit string such as "12.50" to minor units.
// Amounts with more precision than the currency allows are rejected.
func ParseMajor(value, currency string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", value, err)
	}
	exp := exponent(currency)
	minor := d.Shift(exp)
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("parse amount %q: more than %d decimal places", value, exp)
	}
	if minor.IsNegative() || minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("parse amount %q: out of range", value)
	}
	return minor.IntPart(), nil
}
