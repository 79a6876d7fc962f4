// Package game ties the odds engine, ledger, gate and persistence together
// behind the operations chat and HTTP adapters call.
package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SlotBot_Go/internal/concurrency"
	"github.com/osse101/SlotBot_Go/internal/cooldown"
	"github.com/osse101/SlotBot_Go/internal/domain"
	"github.com/osse101/SlotBot_Go/internal/economy"
	"github.com/osse101/SlotBot_Go/internal/logger"
	"github.com/osse101/SlotBot_Go/internal/metrics"
	"github.com/osse101/SlotBot_Go/internal/persistence"
	"github.com/osse101/SlotBot_Go/internal/slots"
)

// Config holds the economy tunables.
type Config struct {
	StartingBalance int64
	BetCooldown     time.Duration
	RevealDelay     time.Duration
	DailyAmount     int64
	// AdminID is the only requester allowed to credit accounts. Empty
	// disables admin credit.
	AdminID string
}

// RevealScheduler runs fn once after delay. Implementations must run every
// scheduled fn eventually, including on shutdown.
type RevealScheduler interface {
	Schedule(delay time.Duration, fn func(ctx context.Context)) uuid.UUID
}

// afterFuncScheduler is the fallback when no scheduler is wired.
type afterFuncScheduler struct{}

func (afterFuncScheduler) Schedule(delay time.Duration, fn func(ctx context.Context)) uuid.UUID {
	time.AfterFunc(delay, func() { fn(context.Background()) })
	return uuid.New()
}

// Publisher receives game events for live feeds. Broadcast must not block.
type Publisher interface {
	Broadcast(eventType string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Broadcast(string, any) {}

// Option customizes an EconomyState.
type Option func(*options)

type options struct {
	table  *slots.Table
	rng    func() float64
	now    func() time.Time
	events Publisher
}

// WithTable replaces the default odds table.
func WithTable(t *slots.Table) Option {
	return func(o *options) { o.table = t }
}

// WithRNG replaces the random source used for draws.
func WithRNG(rng func() float64) Option {
	return func(o *options) { o.rng = rng }
}

// WithClock replaces the wall clock used for cooldowns and daily claims.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithPublisher streams revealed spins, daily claims and admin credits to p.
func WithPublisher(p Publisher) Option {
	return func(o *options) { o.events = p }
}

// EconomyState is the single owner of all mutable game state. Every
// check-then-mutate sequence for one account runs under that account's lock.
type EconomyState struct {
	cfg     Config
	ledger  *economy.Ledger
	gate    *cooldown.Gate
	drawer  *slots.Drawer
	store   persistence.Store
	reveals RevealScheduler
	events  Publisher
	locks   *concurrency.LockManager

	saveMu sync.Mutex
}

// New builds a fresh state. A nil store persists nothing; a nil scheduler
// falls back to time.AfterFunc.
func New(cfg Config, store persistence.Store, reveals RevealScheduler, opts ...Option) *EconomyState {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.table == nil {
		o.table = slots.DefaultTable()
	}

	if cfg.StartingBalance <= 0 {
		cfg.StartingBalance = economy.DefaultStartingBalance
	}
	if cfg.BetCooldown <= 0 {
		cfg.BetCooldown = cooldown.DefaultBetCooldown
	}
	if cfg.RevealDelay <= 0 {
		cfg.RevealDelay = DefaultRevealDelay
	}
	if cfg.DailyAmount <= 0 {
		cfg.DailyAmount = DefaultDailyAmount
	}
	if store == nil {
		store = persistence.Nop{}
	}
	if reveals == nil {
		reveals = afterFuncScheduler{}
	}
	if o.events == nil {
		o.events = nopPublisher{}
	}

	gateOpts := []cooldown.Option{cooldown.WithBetCooldown(cfg.BetCooldown)}
	if o.now != nil {
		gateOpts = append(gateOpts, cooldown.WithClock(o.now))
	}

	return &EconomyState{
		cfg:     cfg,
		ledger:  economy.NewLedger(cfg.StartingBalance),
		gate:    cooldown.NewGate(gateOpts...),
		drawer:  slots.NewDrawer(o.table, o.rng),
		store:   store,
		reveals: reveals,
		events:  o.events,
		locks:   concurrency.NewLockManager(),
	}
}

// Config returns the effective configuration after defaults.
func (s *EconomyState) Config() Config {
	return s.cfg
}

// Table returns the odds table in use.
func (s *EconomyState) Table() *slots.Table {
	return s.drawer.Table()
}

// Restore loads the persisted snapshot into memory. Any failure is logged and
// leaves the state empty; the error is returned for information only.
func (s *EconomyState) Restore(ctx context.Context) error {
	log := logger.FromContext(ctx)

	snap, err := s.store.Load(ctx)
	if err == nil {
		if err = s.ledger.Restore(snap.Balances); err == nil {
			err = s.gate.RestoreClaims(snap.DailyClaims)
		}
	}
	if err != nil {
		metrics.PersistenceFailures.WithLabelValues(metrics.OperationLoad).Inc()
		// partial restores are discarded
		_ = s.ledger.Restore(nil)
		_ = s.gate.RestoreClaims(nil)
		metrics.Accounts.Set(0)
		log.Warn(LogMsgSnapshotLoadFailed, "error", err, "malformed", isMalformed(err))
		return err
	}

	metrics.Accounts.Set(float64(s.ledger.Len()))
	log.Info(LogMsgSnapshotRestored,
		"accounts", len(snap.Balances),
		"daily_claims", len(snap.DailyClaims))
	return nil
}

// Snapshot copies the current in-memory state.
func (s *EconomyState) Snapshot() persistence.Snapshot {
	return persistence.Snapshot{
		Balances:    s.ledger.Snapshot(),
		DailyClaims: s.gate.ClaimsSnapshot(),
	}
}

// Save writes the current state. Writers are serialized so a later snapshot
// is never overwritten by an earlier one. Failures are logged and counted;
// the in-memory state stays authoritative.
func (s *EconomyState) Save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	start := time.Now()
	snap := s.Snapshot()
	metrics.Accounts.Set(float64(len(snap.Balances)))

	if err := s.store.Save(ctx, snap); err != nil {
		metrics.PersistenceFailures.WithLabelValues(metrics.OperationSave).Inc()
		logger.FromContext(ctx).Error(LogMsgSnapshotSaveFailed, "error", err)
		return err
	}

	metrics.SnapshotDuration.Observe(time.Since(start).Seconds())
	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "accounts", len(snap.Balances))
	return nil
}

// persist saves after a mutation. The error is already logged by Save. The
// write must not be abandoned when the request that caused it goes away.
func (s *EconomyState) persist(ctx context.Context) {
	_ = s.Save(context.WithoutCancel(ctx))
}

func (s *EconomyState) lock(accountID string) func() {
	return s.locks.Lock(accountID)
}

func isMalformed(err error) bool {
	return errors.Is(err, domain.ErrMalformedSnapshot)
}
