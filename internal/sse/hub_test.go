package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotBot_Go/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastFiltersByType(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	spinsOnly := hub.Register([]string{"spin.revealed"})
	require.NotNil(t, all)
	require.NotNil(t, spinsOnly)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Broadcast("daily.claimed", map[string]int{"amount": 50})
	hub.Broadcast("spin.revealed", "payload")

	assert.Equal(t, "daily.claimed", receive(t, all).Type)
	assert.Equal(t, "spin.revealed", receive(t, all).Type)

	got := receive(t, spinsOnly)
	assert.Equal(t, "spin.revealed", got.Type)
	assert.Equal(t, "payload", got.Payload)
	assert.NotEmpty(t, got.ID)
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(nil)
	hub.Unregister(c.ID)
	hub.Unregister(c.ID)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, hub.ClientCount())
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	hub.Start()

	c := hub.Register(nil)
	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Nil(t, hub.Register(nil), "no registrations after stop")
	assert.NotPanics(t, func() { hub.Broadcast("spin.revealed", nil) })
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	slow := hub.Register(nil)
	for range ClientEventBuffer + 10 {
		hub.Broadcast("spin.revealed", nil)
	}

	fast := hub.Register(nil)
	hub.Broadcast("daily.claimed", nil)

	// the fast client still receives even though slow is full
	for {
		if receive(t, fast).Type == "daily.claimed" {
			break
		}
	}
	assert.LessOrEqual(t, len(slow.EventChannel), ClientEventBuffer)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "e1", Type: "spin.revealed", Timestamp: 1, Payload: map[string]int{"wager": 10}})
	require.NoError(t, err)

	lines := strings.Split(string(msg), "\n")
	assert.Equal(t, "id: e1", lines[0])
	assert.Equal(t, "event: spin.revealed", lines[1])
	assert.Equal(t, `data: {"id":"e1","type":"spin.revealed","timestamp":1,"payload":{"wager":10}}`, lines[2])
	assert.True(t, strings.HasSuffix(string(msg), "\n\n"))
}

func TestHub_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		hub := NewHub()
		hub.Start()
		hub.Register(nil)
		hub.Broadcast("spin.revealed", nil)
		hub.Stop()
	})
}
