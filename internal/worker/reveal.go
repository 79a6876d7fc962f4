package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SlotBot_Go/internal/logger"
)

type pendingReveal struct {
	timer *time.Timer
	fn    func(ctx context.Context)
}

// RevealWorker runs delayed spin reveals. Every scheduled reveal runs exactly
// once: when its timer fires, or during Shutdown if it is still pending.
type RevealWorker struct {
	mu      sync.Mutex
	pending map[uuid.UUID]*pendingReveal
	closed  bool
	wg      sync.WaitGroup
}

// NewRevealWorker creates an idle worker
func NewRevealWorker() *RevealWorker {
	return &RevealWorker{
		pending: make(map[uuid.UUID]*pendingReveal),
	}
}

// Schedule runs fn after delay and returns an id that tags its log lines.
// After Shutdown has begun, fn runs immediately instead.
func (w *RevealWorker) Schedule(delay time.Duration, fn func(ctx context.Context)) uuid.UUID {
	id := uuid.New()
	log := logger.FromContext(context.Background())

	// the timer callback claims under the same lock, so it cannot run before
	// the entry exists
	w.mu.Lock()
	if w.closed {
		w.wg.Add(1)
		w.mu.Unlock()
		log.Warn(LogMsgRevealLateSchedule, "revealID", id)
		w.run(context.Background(), fn)
		return id
	}

	p := &pendingReveal{fn: fn}
	p.timer = time.AfterFunc(delay, func() {
		if w.claim(id) {
			w.run(context.Background(), fn)
		}
	})
	w.pending[id] = p
	w.mu.Unlock()

	log.Debug(LogMsgRevealScheduled, "revealID", id, "delay", delay)
	return id
}

// Pending returns the number of reveals waiting on their timer.
func (w *RevealWorker) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// claim removes id from the pending set. Whoever removes it runs it.
func (w *RevealWorker) claim(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.pending[id]; !ok {
		return false
	}
	delete(w.pending, id)
	w.wg.Add(1)
	return true
}

func (w *RevealWorker) run(ctx context.Context, fn func(ctx context.Context)) {
	defer w.wg.Done()
	fn(ctx)
}

// Shutdown stops accepting delayed work, runs every pending reveal now and
// waits for in-flight reveals to finish or ctx to expire.
func (w *RevealWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRevealShutdown)

	w.mu.Lock()
	w.closed = true
	flush := make([]func(ctx context.Context), 0, len(w.pending))
	for id, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, id)
		w.wg.Add(1)
		flush = append(flush, p.fn)
	}
	w.mu.Unlock()

	if len(flush) > 0 {
		log.Info(LogMsgRevealFlushing, "count", len(flush))
	}
	for _, fn := range flush {
		go w.run(ctx, fn)
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgRevealShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgRevealShutdownExpire)
		return ctx.Err()
	}
}
