package cooldown

import "time"

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// DefaultBetCooldown is the minimum gap between two bets from one account
	DefaultBetCooldown = 5 * time.Second

	// ClaimDateLayout is the UTC calendar-date format stored for daily claims
	ClaimDateLayout = "2006-01-02"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown / ErrAlreadyClaimed)
// =============================================================================

const (
	// ErrFmtCooldown formats the remaining bet cooldown with one decimal
	ErrFmtCooldown = "on cooldown. try again in %.1fs"

	// ErrFmtClaimedWithHours formats the time until the next daily reset
	ErrFmtClaimedWithHours = "daily bonus already claimed. resets in %dh %dm"

	// ErrFmtClaimedMinutesOnly formats the time until the next daily reset under an hour
	ErrFmtClaimedMinutesOnly = "daily bonus already claimed. resets in %dm %ds"
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	// ErrMsgInvalidClaimDate is returned when a restored claim date does not parse
	ErrMsgInvalidClaimDate = "invalid claim date %q for account %s: %w"
)
