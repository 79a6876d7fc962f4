package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPublishingFixture(cfg Config, rng func() float64) (*fixture, *recordingPublisher) {
	f := newFixture(cfg, rng)
	pub := &recordingPublisher{}
	f.state = New(cfg, f.store, f.reveals, WithRNG(rng), WithClock(f.clock.Now), WithPublisher(pub))
	return f, pub
}

func TestEvents_SpinPublishedAfterReveal(t *testing.T) {
	f, pub := newPublishingFixture(Config{}, sequence(rollCrown))

	spin, err := f.state.PlaceBet(context.Background(), "alice", 100, f.notifier)
	require.NoError(t, err)
	assert.Empty(t, pub.Events(), "nothing is published before the reveal")

	f.reveals.RunAll()

	events := pub.Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventSpinRevealed, events[0].eventType)
	assert.Equal(t, spin.Outcome, events[0].payload)
}

func TestEvents_SpinPublishedWhenDeliveryFails(t *testing.T) {
	f, pub := newPublishingFixture(Config{}, sequence(rollCrown))
	f.notifier.revealErr = errors.New("edit failed")
	f.notifier.replyErr = errors.New("reply failed")

	_, err := f.state.PlaceBet(context.Background(), "alice", 100, f.notifier)
	require.NoError(t, err)
	f.reveals.RunAll()

	require.Len(t, pub.Events(), 1)
}

func TestEvents_RefundedBetNotPublished(t *testing.T) {
	f, pub := newPublishingFixture(Config{}, sequence(rollCrown))
	f.notifier.announceErr = errors.New("channel gone")

	_, err := f.state.PlaceBet(context.Background(), "alice", 100, f.notifier)
	require.Error(t, err)
	f.reveals.RunAll()

	assert.Empty(t, pub.Events())
}

func TestEvents_Credits(t *testing.T) {
	f, pub := newPublishingFixture(Config{AdminID: "root", DailyAmount: 75}, nil)
	ctx := context.Background()

	_, err := f.state.ClaimDaily(ctx, "bob")
	require.NoError(t, err)
	_, err = f.state.AdminCredit(ctx, "root", "carol", 300)
	require.NoError(t, err)
	_, err = f.state.AdminCredit(ctx, "mallory", "carol", 300)
	require.Error(t, err)

	assert.Equal(t, []published{
		{EventDailyClaimed, BalanceEvent{AccountID: "bob", Amount: 75, NewBalance: 1075}},
		{EventAdminCredited, BalanceEvent{AccountID: "carol", Amount: 300, NewBalance: 1300}},
	}, pub.Events())
}
