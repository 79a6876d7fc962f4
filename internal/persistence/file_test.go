package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotBot_Go/internal/domain"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "data.json"))

	snap, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snap.Balances)
	assert.Empty(t, snap.DailyClaims)
	assert.NotNil(t, snap.Balances)
	assert.NotNil(t, snap.DailyClaims)
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "data.json"))

	tests := []struct {
		name string
		snap Snapshot
	}{
		{"empty", NewSnapshot()},
		{"populated", Snapshot{
			Balances:    map[string]int64{"111": 2900, "222": 0, "333": 1000},
			DailyClaims: map[string]string{"111": "2026-03-01"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, tt.snap))

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.snap, got)
		})
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "data.json"))

	require.NoError(t, store.Save(ctx, Snapshot{Balances: map[string]int64{"a": 1, "b": 2}}))
	require.NoError(t, store.Save(ctx, Snapshot{Balances: map[string]int64{"a": 5}}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 5}, got.Balances)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStore_WireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	content := `{"balances":{"42":1337},"dailyClaims":{"42":"2026-01-31"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := NewFileStore(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1337), got.Balances["42"])
	assert.Equal(t, "2026-01-31", got.DailyClaims["42"])
}

func TestFileStore_PartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"balances":{"1":5}}`), 0o600))

	got, err := NewFileStore(path).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"1": 5}, got.Balances)
	assert.NotNil(t, got.DailyClaims)
}

func TestFileStore_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"truncated", `{"balances":{"1":`},
		{"wrong types", `{"balances":{"1":"lots"}}`},
		{"negative balance", `{"balances":{"1":-20}}`},
		{"bad claim date", `{"dailyClaims":{"1":"yesterday"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := NewFileStore(path).Load(context.Background())

			assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)
		})
	}
}

func TestFileStore_SaveToUnwritableLocation(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// parent "directory" is a regular file
	store := NewFileStore(filepath.Join(blocker, "data.json"))

	err := store.Save(context.Background(), NewSnapshot())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
