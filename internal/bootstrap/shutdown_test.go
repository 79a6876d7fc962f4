package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SlotBot_Go/internal/persistence"
)

type recorder struct {
	calls []string
}

type fakeServer struct{ r *recorder }

func (f fakeServer) Stop(context.Context) error {
	f.r.calls = append(f.r.calls, "server")
	return errors.New("still draining")
}

type fakeBot struct{ r *recorder }

func (f fakeBot) Stop() error {
	f.r.calls = append(f.r.calls, "discord")
	return nil
}

type fakeReveals struct {
	r       *recorder
	pending int
}

func (f fakeReveals) Pending() int {
	f.r.calls = append(f.r.calls, "pending")
	return f.pending
}

func (f fakeReveals) Shutdown(context.Context) error {
	f.r.calls = append(f.r.calls, "reveals")
	return nil
}

type fakeStopper struct {
	r    *recorder
	name string
}

func (f fakeStopper) Stop() { f.r.calls = append(f.r.calls, f.name) }

type fakeSaver struct{ r *recorder }

func (f fakeSaver) Save(context.Context) error {
	f.r.calls = append(f.r.calls, "save")
	return nil
}

type fakeStore struct {
	persistence.Nop
	r *recorder
}

func (f fakeStore) Close() error {
	f.r.calls = append(f.r.calls, "store")
	return nil
}

func TestGracefulShutdown_Order(t *testing.T) {
	r := &recorder{}
	GracefulShutdown(context.Background(), ShutdownComponents{
		Server:    fakeServer{r},
		Events:    fakeStopper{r, "events"},
		Discord:   fakeBot{r},
		Reveals:   fakeReveals{r: r, pending: 2},
		Scheduler: fakeStopper{r, "scheduler"},
		Pool:      fakeStopper{r, "pool"},
		Economy:   fakeSaver{r},
		Store:     fakeStore{r: r},
	})

	// A failing server stop does not abort the sequence
	assert.Equal(t, []string{"events", "server", "discord", "pending", "reveals", "scheduler", "pool", "save", "store"}, r.calls)
}

func TestGracefulShutdown_SkipsMissing(t *testing.T) {
	r := &recorder{}
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{
			Reveals: fakeReveals{r: r},
			Economy: fakeSaver{r},
		})
	})
	assert.Equal(t, []string{"pending", "reveals", "save"}, r.calls)
}

// A failed startup shuts down only what was already running
func TestGracefulShutdown_PartialStartup(t *testing.T) {
	r := &recorder{}
	GracefulShutdown(context.Background(), ShutdownComponents{
		Events: fakeStopper{r, "events"},
		Store:  fakeStore{r: r},
	})
	assert.Equal(t, []string{"events", "store"}, r.calls)
}
