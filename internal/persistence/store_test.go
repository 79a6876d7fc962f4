package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_CloneIsDeep(t *testing.T) {
	orig := Snapshot{
		Balances:    map[string]int64{"a": 1},
		DailyClaims: map[string]string{"a": "2026-01-01"},
	}

	clone := orig.Clone()
	clone.Balances["a"] = 99
	clone.DailyClaims["b"] = "2026-01-02"

	assert.Equal(t, int64(1), orig.Balances["a"])
	assert.Len(t, orig.DailyClaims, 1)
}

func TestSnapshot_Normalize(t *testing.T) {
	snap := Snapshot{}.Normalize()

	assert.NotNil(t, snap.Balances)
	assert.NotNil(t, snap.DailyClaims)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var store Store = Nop{}

	require.NoError(t, store.Save(ctx, Snapshot{Balances: map[string]int64{"a": 1}}))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Balances)
	assert.NoError(t, store.Close())
}
