package game

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotBot_Go/internal/cooldown"
	"github.com/osse101/SlotBot_Go/internal/domain"
)

func TestClaimDaily_OncePerUTCDay(t *testing.T) {
	f := newFixture(Config{}, nil)
	ctx := context.Background()

	// fixture clock starts at 22:00 UTC
	claim, err := f.state.ClaimDaily(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(50), claim.Amount)
	assert.Equal(t, int64(1050), claim.NewBalance)
	assert.Equal(t, 2*time.Hour, claim.ResetIn)

	f.clock.Advance(90 * time.Minute)
	_, err = f.state.ClaimDaily(ctx, "alice")
	require.Error(t, err)

	var claimed cooldown.ErrAlreadyClaimed
	require.ErrorAs(t, err, &claimed)
	assert.Equal(t, 30*time.Minute, claimed.ResetIn)
	assert.Equal(t, "daily bonus already claimed. resets in 30m 0s", err.Error())

	balance, _ := f.state.Balance(ctx, "alice")
	assert.Equal(t, int64(1050), balance)

	// 00:00 UTC next day
	f.clock.Advance(30 * time.Minute)
	claim, err = f.state.ClaimDaily(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1100), claim.NewBalance)
}

func TestClaimDaily_ConfiguredAmount(t *testing.T) {
	f := newFixture(Config{DailyAmount: 250, StartingBalance: 10}, nil)

	claim, err := f.state.ClaimDaily(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(260), claim.NewBalance)
}

func TestClaimDaily_Persisted(t *testing.T) {
	f := newFixture(Config{}, nil)

	_, err := f.state.ClaimDaily(context.Background(), "carol")
	require.NoError(t, err)

	last, ok := f.store.Last()
	require.True(t, ok)
	assert.Equal(t, int64(1050), last.Balances["carol"])
	assert.Equal(t, "2026-03-01", last.DailyClaims["carol"])
}

func TestClaimDaily_EmptyAccount(t *testing.T) {
	f := newFixture(Config{}, nil)

	_, err := f.state.ClaimDaily(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdminCredit(t *testing.T) {
	tests := []struct {
		name      string
		adminID   string
		requester string
		target    string
		amount    int64
		wantErr   error
	}{
		{"no admin configured", "", "anyone", "dave", 100, domain.ErrUnauthorized},
		{"wrong requester", "root", "mallory", "dave", 100, domain.ErrUnauthorized},
		{"empty target", "root", "root", "", 100, domain.ErrInvalidInput},
		{"zero amount", "root", "root", "dave", 0, domain.ErrInvalidInput},
		{"negative amount", "root", "root", "dave", -1, domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(Config{AdminID: tt.adminID}, nil)

			_, err := f.state.AdminCredit(context.Background(), tt.requester, tt.target, tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
			// rejected credits never create accounts
			assert.Empty(t, f.state.Leaderboard(0))
			assert.Zero(t, f.store.Count())
		})
	}
}

func TestAdminCredit_Granted(t *testing.T) {
	f := newFixture(Config{AdminID: "root"}, nil)
	ctx := context.Background()

	balance, err := f.state.AdminCredit(ctx, "root", "erin", 500)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), balance)

	// the admin may credit themselves
	balance, err = f.state.AdminCredit(ctx, "root", "root", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), balance)

	last, ok := f.store.Last()
	require.True(t, ok)
	assert.Equal(t, int64(1500), last.Balances["erin"])
}

func TestBalance_SeedsAndPersists(t *testing.T) {
	f := newFixture(Config{StartingBalance: 250}, nil)
	ctx := context.Background()

	balance, err := f.state.Balance(ctx, "frank")
	require.NoError(t, err)
	assert.Equal(t, int64(250), balance)
	assert.Equal(t, 1, f.store.Count())

	// second read is not a mutation
	_, err = f.state.Balance(ctx, "frank")
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.Count())

	_, err = f.state.Balance(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeaderboard(t *testing.T) {
	f := newFixture(Config{AdminID: "root"}, nil)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := f.state.Balance(ctx, id)
		require.NoError(t, err)
	}
	_, err := f.state.AdminCredit(ctx, "root", "c", 10)
	require.NoError(t, err)

	top := f.state.Leaderboard(2)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].AccountID)
	assert.Equal(t, int64(1010), top[0].Balance)
	// ties keep first-seen order
	assert.Equal(t, "a", top[1].AccountID)

	assert.Len(t, f.state.Leaderboard(0), 3)
}

func TestCooldownRemaining(t *testing.T) {
	f := newFixture(Config{BetCooldown: 2 * time.Second}, sequence(rollCherry, rollLemon, rollMoney))

	assert.Zero(t, f.state.CooldownRemaining("gina"))

	_, err := f.state.PlaceBet(context.Background(), "gina", 10, f.notifier)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, f.state.CooldownRemaining("gina"))
}

func TestAdminCredit_SaveFailureIsNotFatal(t *testing.T) {
	f := newFixture(Config{AdminID: "root"}, nil)
	f.store.saveErr = errors.New("read-only filesystem")

	balance, err := f.state.AdminCredit(context.Background(), "root", "hank", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1005), balance)
}

func TestAdminCredit_BalanceLimit(t *testing.T) {
	pub := &recordingPublisher{}
	f := newFixture(Config{AdminID: "root"}, nil)
	f.state = New(Config{AdminID: "root"}, f.store, f.reveals, WithPublisher(pub))
	ctx := context.Background()

	_, err := f.state.AdminCredit(ctx, "root", "erin", math.MaxInt64)
	require.ErrorIs(t, err, domain.ErrBalanceLimit)

	balance, err := f.state.Balance(ctx, "erin")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)
	assert.Empty(t, pub.Events())

	// topping up to exactly the limit is still allowed
	balance, err = f.state.AdminCredit(ctx, "root", "erin", math.MaxInt64-1000)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), balance)
}
