package cooldown

import "time"

// Option configures a Gate.
type Option func(*Gate)

// WithClock replaces the wall clock. Tests use it to step through cooldowns
// and UTC midnight.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		if now != nil {
			g.now = now
		}
	}
}

// WithBetCooldown overrides DefaultBetCooldown. Non-positive values are ignored.
func WithBetCooldown(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.cooldown = d
		}
	}
}
