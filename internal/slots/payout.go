package slots

import (
	"math"

	"github.com/shopspring/decimal"
)

// PayoutKind classifies a spin result.
type PayoutKind string

// bigWinMultiplier marks payouts worth calling out to the player.
var bigWinMultiplier = decimal.NewFromInt(8)

// Payout is the evaluated result of one spin for a given wager.
type Payout struct {
	Kind       PayoutKind      `json:"kind"`
	Symbol     Symbol          `json:"symbol,omitempty"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Amount     int64           `json:"amount"`
}

// IsWin reports whether anything is paid out.
func (p Payout) IsWin() bool {
	return p.Amount > 0
}

// IsBigWin reports whether the multiplier reaches the big win threshold.
func (p Payout) IsBigWin() bool {
	return p.Multiplier.GreaterThanOrEqual(bigWinMultiplier)
}

// Evaluate maps three reels to a payout. The multiplication happens first and
// the product is truncated afterwards, so floor(wager * multiplier) is exact.
func Evaluate(table *Table, reels Reels, wager int64) Payout {
	// Check for 3 matching symbols
	if reels[0] == reels[1] && reels[1] == reels[2] {
		e, _ := table.Entry(reels[0])
		return payoutFor(KindTriple, e.Symbol, e.Triple, wager)
	}

	// Check for 2 matching symbols; pairings are tried (0,1), (1,2), (0,2)
	var paired Symbol
	switch {
	case reels[0] == reels[1]:
		paired = reels[0]
	case reels[1] == reels[2]:
		paired = reels[1]
	case reels[0] == reels[2]:
		paired = reels[0]
	default:
		// No match - total loss
		return Payout{Kind: KindNone, Multiplier: decimal.Zero}
	}

	e, _ := table.Entry(paired)
	return payoutFor(KindPair, e.Symbol, e.Pair, wager)
}

func payoutFor(kind PayoutKind, sym Symbol, m decimal.Decimal, wager int64) Payout {
	return Payout{
		Kind:       kind,
		Symbol:     sym,
		Multiplier: m,
		Amount:     floorCapped(wager, m),
	}
}

var maxCoins = decimal.NewFromInt(math.MaxInt64)

// floorCapped is floor(wager * m) clamped to [0, math.MaxInt64]. IntPart
// keeps only the low 64 bits, so the clamp must happen in decimal.
func floorCapped(wager int64, m decimal.Decimal) int64 {
	amount := decimal.NewFromInt(wager).Mul(m).Floor()
	switch {
	case !amount.IsPositive():
		return 0
	case amount.GreaterThan(maxCoins):
		return math.MaxInt64
	}
	return amount.IntPart()
}
