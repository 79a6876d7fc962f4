package slots

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequence returns an rng that yields values in order and then repeats the last one.
func sequence(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func TestDrawSymbol_Forced(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		want Symbol
	}{
		{"low end", 0, SymbolCherry},
		{"lemon band", 0.25, SymbolLemon},
		{"money band", 0.55, SymbolMoney},
		{"diamond band", 0.8, SymbolDiamond},
		{"crown band", 0.95, SymbolCrown},
		{"rounding up to total", 1.0, SymbolCrown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrawer(DefaultTable(), sequence(tt.r))
			assert.Equal(t, tt.want, d.DrawSymbol())
		})
	}
}

func TestDrawReels_IndependentDraws(t *testing.T) {
	d := NewDrawer(DefaultTable(), sequence(0.1, 0.95, 0.1))

	reels := d.DrawReels()

	assert.Equal(t, Reels{SymbolCherry, SymbolCrown, SymbolCherry}, reels)
	assert.Equal(t, "CHERRY CROWN CHERRY", reels.String())
}

func TestDrawSymbol_Distribution(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping distribution test in short mode")
	}

	table := DefaultTable()
	src := rand.New(rand.NewPCG(42, 1337))
	d := NewDrawer(table, src.Float64)

	const draws = 200_000
	counts := make(map[Symbol]int)
	for i := 0; i < draws; i++ {
		counts[d.DrawSymbol()]++
	}

	for _, e := range table.Entries() {
		want := float64(e.Weight) / float64(table.Total())
		got := float64(counts[e.Symbol]) / draws
		assert.InDelta(t, want, got, 0.01, "symbol %s", e.Symbol)
	}
}

func TestNewDrawer_DefaultRNG(t *testing.T) {
	d := NewDrawer(DefaultTable(), nil)

	for i := 0; i < 100; i++ {
		_, ok := d.Table().Entry(d.DrawSymbol())
		assert.True(t, ok)
	}
}
