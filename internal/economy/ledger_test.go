package economy

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotBot_Go/internal/domain"
)

func TestLedger_BalanceSeedsOnce(t *testing.T) {
	l := NewLedger(1000)

	balance, seeded := l.Balance("alice")
	assert.Equal(t, int64(1000), balance)
	assert.True(t, seeded)

	balance, seeded = l.Balance("alice")
	assert.Equal(t, int64(1000), balance)
	assert.False(t, seeded)
	assert.Equal(t, 1, l.Len())
}

func TestNewLedger_DefaultStartingBalance(t *testing.T) {
	assert.Equal(t, DefaultStartingBalance, NewLedger(0).StartingBalance())
	assert.Equal(t, int64(250), NewLedger(250).StartingBalance())
}

func TestLedger_Debit(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		want    int64
		wantErr error
	}{
		{"partial", 100, 900, nil},
		{"entire balance", 1000, 0, nil},
		{"overdraw", 1001, 1000, domain.ErrInsufficientFunds},
		{"zero", 0, 0, domain.ErrInvalidInput},
		{"negative", -5, 0, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(1000)

			got, err := l.Debit("bob", tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedger_DebitFailureLeavesBalance(t *testing.T) {
	l := NewLedger(1000)

	_, err := l.Debit("bob", 5000)
	require.Error(t, err)

	balance, _ := l.Balance("bob")
	assert.Equal(t, int64(1000), balance)
}

func TestLedger_Credit(t *testing.T) {
	l := NewLedger(1000)

	got, err := l.Credit("carol", 2900)
	require.NoError(t, err)
	assert.Equal(t, int64(3900), got)

	_, err = l.Credit("carol", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedger_CreditOverflow(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		want    int64
		wantErr error
	}{
		{"up to the limit", math.MaxInt64 - 1000, math.MaxInt64, nil},
		{"one past the limit", math.MaxInt64 - 999, 1000, domain.ErrBalanceLimit},
		{"max int64", math.MaxInt64, 1000, domain.ErrBalanceLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(1000)

			got, err := l.Credit("dave", tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			balance, _ := l.Balance("dave")
			assert.Equal(t, tt.want, balance)
		})
	}
}

func TestLedger_Leaderboard(t *testing.T) {
	l := NewLedger(1000)
	l.Balance("a")
	_, _ = l.Credit("b", 500)
	l.Balance("c")
	_, _ = l.Debit("d", 999)

	t.Run("ordered with ties in insertion order", func(t *testing.T) {
		got := l.Leaderboard(10)
		assert.Equal(t, []Standing{
			{AccountID: "b", Balance: 1500},
			{AccountID: "a", Balance: 1000},
			{AccountID: "c", Balance: 1000},
			{AccountID: "d", Balance: 1},
		}, got)
	})

	t.Run("limited", func(t *testing.T) {
		got := l.Leaderboard(2)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].AccountID)
		assert.Equal(t, "a", got[1].AccountID)
	})

	t.Run("non-positive limit returns all", func(t *testing.T) {
		assert.Len(t, l.Leaderboard(0), 4)
		assert.Len(t, l.Leaderboard(-1), 4)
	})

	t.Run("empty ledger", func(t *testing.T) {
		assert.Empty(t, NewLedger(1000).Leaderboard(10))
	})
}

func TestLedger_SnapshotRestore(t *testing.T) {
	l := NewLedger(1000)
	_, _ = l.Credit("x", 10)

	snap := l.Snapshot()
	snap["x"] = 0
	balance, _ := l.Balance("x")
	assert.Equal(t, int64(1010), balance, "snapshot must be a copy")

	restored := NewLedger(1000)
	require.NoError(t, restored.Restore(map[string]int64{"zed": 5, "amy": 5, "max": 7}))

	assert.Equal(t, 3, restored.Len())
	assert.Equal(t, []Standing{
		{AccountID: "max", Balance: 7},
		{AccountID: "amy", Balance: 5},
		{AccountID: "zed", Balance: 5},
	}, restored.Leaderboard(0))

	err := restored.Restore(map[string]int64{"bad": -1})
	assert.ErrorIs(t, err, domain.ErrMalformedSnapshot)
	assert.Equal(t, 3, restored.Len(), "failed restore must not touch state")
}

func TestLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	// ARRANGE
	l := NewLedger(1000)
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	// ACT
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Debit("shared", 100); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// ASSERT
	balance, _ := l.Balance("shared")
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, int64(0), balance)
}
