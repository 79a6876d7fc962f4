package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SlotBot_Go/internal/persistence"
)

// Draw values landing on each symbol of the default table.
const (
	rollCherry  = 0.10
	rollLemon   = 0.30
	rollMoney   = 0.50
	rollDiamond = 0.80
	rollCrown   = 0.95
)

func sequence(values ...float64) func() float64 {
	var mu sync.Mutex
	i := 0
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		v := values[i%len(values)]
		i++
		return v
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// manualScheduler holds reveals until the test runs them.
type manualScheduler struct {
	mu      sync.Mutex
	pending []func(ctx context.Context)
	delays  []time.Duration
}

func (m *manualScheduler) Schedule(delay time.Duration, fn func(ctx context.Context)) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, fn)
	m.delays = append(m.delays, delay)
	return uuid.New()
}

func (m *manualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *manualScheduler) RunAll() {
	m.mu.Lock()
	fns := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, fn := range fns {
		fn(context.Background())
	}
}

type fakeNotifier struct {
	announceErr error
	revealErr   error
	replyErr    error

	mu        sync.Mutex
	announced []Bet
	revealed  []Outcome
	replies   []Outcome
}

func (n *fakeNotifier) AnnounceSpin(_ context.Context, bet Bet) (Announcement, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.announceErr != nil {
		return nil, n.announceErr
	}
	n.announced = append(n.announced, bet)
	return fakeAnnouncement{n}, nil
}

func (n *fakeNotifier) Reply(_ context.Context, o Outcome) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.replyErr != nil {
		return n.replyErr
	}
	n.replies = append(n.replies, o)
	return nil
}

type fakeAnnouncement struct{ n *fakeNotifier }

func (a fakeAnnouncement) Reveal(_ context.Context, o Outcome) error {
	a.n.mu.Lock()
	defer a.n.mu.Unlock()
	if a.n.revealErr != nil {
		return a.n.revealErr
	}
	a.n.revealed = append(a.n.revealed, o)
	return nil
}

// recordingStore keeps every saved snapshot.
type recordingStore struct {
	loadSnap persistence.Snapshot
	loadErr  error
	saveErr  error

	mu    sync.Mutex
	saves []persistence.Snapshot
}

func (s *recordingStore) Load(context.Context) (persistence.Snapshot, error) {
	if s.loadErr != nil {
		return persistence.Snapshot{}, s.loadErr
	}
	return s.loadSnap.Clone(), nil
}

func (s *recordingStore) Save(_ context.Context, snap persistence.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves = append(s.saves, snap.Clone())
	return nil
}

func (s *recordingStore) Close() error { return nil }

func (s *recordingStore) Last() (persistence.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saves) == 0 {
		return persistence.Snapshot{}, false
	}
	return s.saves[len(s.saves)-1], true
}

func (s *recordingStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}

type fixture struct {
	state    *EconomyState
	store    *recordingStore
	reveals  *manualScheduler
	notifier *fakeNotifier
	clock    *fakeClock
}

func newFixture(cfg Config, rng func() float64) *fixture {
	f := &fixture{
		store:    &recordingStore{},
		reveals:  &manualScheduler{},
		notifier: &fakeNotifier{},
		clock:    newFakeClock(time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)),
	}
	f.state = New(cfg, f.store, f.reveals, WithRNG(rng), WithClock(f.clock.Now))
	return f
}

type published struct {
	eventType string
	payload   any
}

// recordingPublisher keeps every broadcast event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Broadcast(eventType string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{eventType, payload})
}

func (p *recordingPublisher) Events() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.events...)
}
