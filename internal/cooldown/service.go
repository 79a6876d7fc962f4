package cooldown

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/osse101/SlotBot_Go/internal/domain"
)

// ClaimStatus reports whether an account already took today's daily bonus.
type ClaimStatus struct {
	AlreadyClaimed bool
	// ResetIn is the time until the next UTC midnight
	ResetIn time.Duration
}

// Gate owns every timing decision: the per-account bet cooldown and the
// once-per-UTC-day claim token. Checks never mutate.
type Gate struct {
	mu       sync.RWMutex
	lastBet  map[string]time.Time
	claims   map[string]string // account id -> last claimed UTC date
	cooldown time.Duration
	now      func() time.Time
}

// NewGate creates an empty gate.
func NewGate(opts ...Option) *Gate {
	g := &Gate{
		lastBet:  make(map[string]time.Time),
		claims:   make(map[string]string),
		cooldown: DefaultBetCooldown,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Cooldown returns the configured bet cooldown.
func (g *Gate) Cooldown() time.Duration {
	return g.cooldown
}

// CheckCooldown returns the time left before the account may bet again, or
// zero when it is clear.
func (g *Gate) CheckCooldown(accountID string) time.Duration {
	g.mu.RLock()
	last, ok := g.lastBet[accountID]
	g.mu.RUnlock()
	if !ok {
		return 0
	}

	remaining := g.cooldown - g.now().Sub(last)
	switch {
	case remaining <= 0:
		return 0
	case remaining > g.cooldown:
		// clock went backwards
		return g.cooldown
	default:
		return remaining
	}
}

// RecordBet stamps the account's last bet time. Call it only once the wager
// has been debited.
func (g *Gate) RecordBet(accountID string) {
	now := g.now()
	g.mu.Lock()
	g.lastBet[accountID] = now
	g.mu.Unlock()
}

// CheckDailyClaim compares the stored claim date with today's UTC date.
func (g *Gate) CheckDailyClaim(accountID string) ClaimStatus {
	now := g.now().UTC()

	g.mu.RLock()
	last := g.claims[accountID]
	g.mu.RUnlock()

	return ClaimStatus{
		AlreadyClaimed: last == now.Format(ClaimDateLayout),
		ResetIn:        timeUntilNextReset(now),
	}
}

// RecordDailyClaim stores today's UTC date for the account. The caller pairs
// it with the bonus credit under the same account lock.
func (g *Gate) RecordDailyClaim(accountID string) {
	today := g.now().UTC().Format(ClaimDateLayout)
	g.mu.Lock()
	g.claims[accountID] = today
	g.mu.Unlock()
}

// ClaimsSnapshot copies the claim dates for persistence.
func (g *Gate) ClaimsSnapshot() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return maps.Clone(g.claims)
}

// RestoreClaims replaces the claim dates. Every date must be YYYY-MM-DD.
// Bet cooldowns are not persisted.
func (g *Gate) RestoreClaims(claims map[string]string) error {
	for id, date := range claims {
		if _, err := time.Parse(ClaimDateLayout, date); err != nil {
			return fmt.Errorf(ErrMsgInvalidClaimDate, date, id, domain.ErrMalformedSnapshot)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.claims = make(map[string]string, len(claims))
	maps.Copy(g.claims, claims)
	return nil
}

func timeUntilNextReset(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return midnight.Sub(now)
}

// ErrOnCooldown is returned when a bet arrives inside the cooldown window
type ErrOnCooldown struct {
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	return fmt.Sprintf(ErrFmtCooldown, e.Remaining.Seconds())
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// ErrAlreadyClaimed is returned when the daily bonus was already taken today
type ErrAlreadyClaimed struct {
	ResetIn time.Duration
}

func (e ErrAlreadyClaimed) Error() string {
	hours := int(e.ResetIn.Hours())
	minutes := int(e.ResetIn.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf(ErrFmtClaimedWithHours, hours, minutes)
	}
	seconds := int(e.ResetIn.Seconds()) % 60
	return fmt.Sprintf(ErrFmtClaimedMinutesOnly, minutes, seconds)
}

// Is allows errors.Is() to work with ErrAlreadyClaimed
func (e ErrAlreadyClaimed) Is(target error) bool {
	_, ok := target.(ErrAlreadyClaimed)
	return ok
}
