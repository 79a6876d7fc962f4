package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotBot_Go/internal/game"
	"github.com/osse101/SlotBot_Go/internal/sse"
)

func TestServer_EventStream(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	state := game.New(game.Config{DailyAmount: 50}, nil, inlineScheduler{}, game.WithPublisher(hub))
	s := NewServer(Options{APIKey: testAPIKey, Events: hub}, state)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	unauth, err := http.Get(ts.URL + "/api/v1/events")
	require.NoError(t, err)
	unauth.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, unauth.StatusCode)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/events?types="+game.EventDailyClaimed, nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sc := bufio.NewScanner(resp.Body)
	next := func() (event, data string) {
		for sc.Scan() {
			line := sc.Text()
			if v, ok := strings.CutPrefix(line, "event: "); ok {
				event = v
			}
			if v, ok := strings.CutPrefix(line, "data: "); ok {
				return event, v
			}
		}
		t.Fatalf("stream ended: %v", sc.Err())
		return "", ""
	}

	event, _ := next()
	assert.Equal(t, sse.EventTypeConnected, event)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	_, err = state.ClaimDaily(context.Background(), "alice")
	require.NoError(t, err)

	event, data := next()
	assert.Equal(t, game.EventDailyClaimed, event)
	assert.Contains(t, data, `"account_id":"alice"`)
	assert.Contains(t, data, `"new_balance":1050`)
}

func TestServer_EventStreamNotMountedWithoutHub(t *testing.T) {
	s := newTestServer(testAPIKey)
	rec := serve(s, http.MethodGet, "/api/v1/events", "", testAPIKey)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
