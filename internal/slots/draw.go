package slots

import (
	"math/rand/v2"
	"strings"
)

// Reels is one spin result, one symbol per reel.
type Reels [ReelCount]Symbol

// String joins the symbols with spaces.
func (r Reels) String() string {
	parts := make([]string, len(r))
	for i, s := range r {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

// Drawer samples symbols from a Table. It keeps no state between draws.
type Drawer struct {
	table *Table
	rng   func() float64 // uniform in [0, 1); injectable for testing
}

// NewDrawer creates a drawer over table. A nil rng uses math/rand/v2.
func NewDrawer(table *Table, rng func() float64) *Drawer {
	if rng == nil {
		rng = rand.Float64
	}
	return &Drawer{table: table, rng: rng}
}

// Table returns the odds table the drawer samples from.
func (d *Drawer) Table() *Table {
	return d.table
}

// DrawSymbol samples one symbol with probability weight/total.
func (d *Drawer) DrawSymbol() Symbol {
	r := d.rng() * float64(d.table.Total())
	return d.table.Lookup(r).Symbol
}

// DrawReels draws every reel independently, with replacement.
func (d *Drawer) DrawReels() Reels {
	var reels Reels
	for i := range reels {
		reels[i] = d.DrawSymbol()
	}
	return reels
}
