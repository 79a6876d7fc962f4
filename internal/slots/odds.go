package slots

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Symbol is one face of a reel. The chat layer renders it as an opaque token.
type Symbol string

// Entry configures one symbol: its relative draw weight and payout factors.
type Entry struct {
	Symbol Symbol
	Weight int
	// Triple is the payout factor for three of a kind.
	Triple decimal.Decimal
	// Pair is the payout factor for exactly two matching symbols.
	Pair decimal.Decimal
}

// Table is an immutable weighted symbol table with a precomputed
// cumulative-weight lookup. Build a new Table to change the symbol set.
type Table struct {
	entries    []Entry
	cumulative []int
	total      int
	maxFactor  decimal.Decimal
}

// NewTable validates the entries and precomputes cumulative weights in the given order.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New(ErrMsgEmptyTable)
	}

	seen := make(map[Symbol]struct{}, len(entries))
	cumulative := make([]int, len(entries))
	total := 0
	maxFactor := decimal.Zero
	for i, e := range entries {
		if !slices.Contains(knownSymbols, e.Symbol) {
			return nil, fmt.Errorf(ErrMsgUnknownSymbol, e.Symbol)
		}
		if _, dup := seen[e.Symbol]; dup {
			return nil, fmt.Errorf(ErrMsgDuplicateSymbol, e.Symbol)
		}
		seen[e.Symbol] = struct{}{}

		if e.Weight <= 0 {
			return nil, fmt.Errorf(ErrMsgNonPositiveWeight, e.Symbol, e.Weight)
		}
		if !e.Triple.IsPositive() {
			return nil, fmt.Errorf(ErrMsgNonPositiveFactor, e.Symbol, "triple")
		}
		if !e.Pair.IsPositive() {
			return nil, fmt.Errorf(ErrMsgNonPositiveFactor, e.Symbol, "pair")
		}

		total += e.Weight
		cumulative[i] = total
		maxFactor = decimal.Max(maxFactor, e.Triple, e.Pair)
	}

	return &Table{
		entries:    slices.Clone(entries),
		cumulative: cumulative,
		total:      total,
		maxFactor:  maxFactor,
	}, nil
}

// DefaultTable returns the reference configuration (total weight 100).
func DefaultTable() *Table {
	t, err := NewTable([]Entry{
		{Symbol: SymbolCherry, Weight: 20, Triple: decimal.NewFromInt(2), Pair: decimal.RequireFromString("0.4")},
		{Symbol: SymbolLemon, Weight: 20, Triple: decimal.RequireFromString("2.5"), Pair: decimal.RequireFromString("0.4")},
		{Symbol: SymbolMoney, Weight: 30, Triple: decimal.NewFromInt(4), Pair: decimal.RequireFromString("0.6")},
		{Symbol: SymbolDiamond, Weight: 20, Triple: decimal.NewFromInt(8), Pair: decimal.NewFromInt(1)},
		{Symbol: SymbolCrown, Weight: 10, Triple: decimal.NewFromInt(20), Pair: decimal.RequireFromString("1.5")},
	})
	if err != nil {
		panic("slots: invalid default table: " + err.Error())
	}
	return t
}

// Total returns the sum of all weights.
func (t *Table) Total() int {
	return t.total
}

// MaxPayout is the largest payout any draw can give for wager, capped at
// math.MaxInt64.
func (t *Table) MaxPayout(wager int64) int64 {
	return floorCapped(wager, t.maxFactor)
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Entry looks up a symbol's configuration.
func (t *Table) Entry(sym Symbol) (Entry, bool) {
	for _, e := range t.entries {
		if e.Symbol == sym {
			return e, true
		}
	}
	return Entry{}, false
}

// Lookup maps a draw value in [0, Total) to the first entry whose cumulative
// weight exceeds it. Values at or beyond Total (rounding) map to the last entry.
func (t *Table) Lookup(r float64) Entry {
	for i, c := range t.cumulative {
		if r < float64(c) {
			return t.entries[i]
		}
	}
	return t.entries[len(t.entries)-1]
}

// oddsFile is the YAML layout accepted by LoadTable.
type oddsFile struct {
	Symbols []struct {
		Symbol Symbol     `yaml:"symbol"`
		Weight int        `yaml:"weight"`
		Triple multiplier `yaml:"triple"`
		Pair   multiplier `yaml:"pair"`
	} `yaml:"symbols"`
}

// multiplier decodes a YAML scalar straight into a decimal so that values
// like 0.4 never pass through float64.
type multiplier struct {
	decimal.Decimal
}

func (m *multiplier) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf(ErrMsgInvalidMultiplier, value.Value, err)
	}
	m.Decimal = d
	return nil
}

// LoadTable reads an odds table from a YAML file:
//
//	symbols:
//	  - {symbol: CHERRY, weight: 20, triple: 2, pair: 0.4}
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadOddsFile, err)
	}

	var f oddsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseOddsFile, err)
	}

	entries := make([]Entry, 0, len(f.Symbols))
	for _, s := range f.Symbols {
		entries = append(entries, Entry{
			Symbol: s.Symbol,
			Weight: s.Weight,
			Triple: s.Triple.Decimal,
			Pair:   s.Pair.Decimal,
		})
	}
	return NewTable(entries)
}
