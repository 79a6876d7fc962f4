package game

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxWager = decimal.NewFromInt(math.MaxInt64)

// ParseWager turns the raw amount typed by a player into a wager. Any numeric
// literal that denotes a positive whole number is accepted, so "10", "10.0"
// and "1e3" all parse.
func ParseWager(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingWager
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsInteger() || !d.IsPositive() || d.GreaterThan(maxWager) {
		return 0, ErrBadWager
	}
	return d.IntPart(), nil
}
