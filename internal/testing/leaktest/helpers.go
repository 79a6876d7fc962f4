// Package leaktest catches goroutines a test leaves running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultTimeout is how long Check waits for goroutines to wind down.
const DefaultTimeout = time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline taken at
// construction.
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count once it stops
// falling, so goroutines finishing from earlier tests are not counted.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{
		t:       t,
		before:  settle(),
		timeout: DefaultTimeout,
	}
}

// Check fails the test if, after waiting up to the timeout, more than
// tolerance goroutines are alive beyond the baseline.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	if n, ok := waitFor(target, g.timeout); !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, n, n-g.before, tolerance)
	}
}

// Verify registers a zero-tolerance check that runs after the test's other
// cleanups. Call it first so it sees every resource closed.
func Verify(t testing.TB) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Check(0) })
}

// CheckNoGoroutineLeak runs fn and fails if it left goroutines behind.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until the count stops changing and returns it.
func settle() int {
	last := runtime.NumGoroutine()
	for range 10 {
		runtime.Gosched()
		time.Sleep(pollInterval)
		n := runtime.NumGoroutine()
		if n == last {
			return n
		}
		last = n
	}
	return last
}

func waitFor(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		runtime.Gosched()
		time.Sleep(pollInterval)
	}
}
