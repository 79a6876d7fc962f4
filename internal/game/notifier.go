package game

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/SlotBot_Go/internal/slots"
)

// Bet is an accepted wager, handed to the notifier before the draw.
type Bet struct {
	SpinID    uuid.UUID
	AccountID string
	Wager     int64
}

// Outcome is a settled spin. Reels are exposed as symbol names only.
type Outcome struct {
	SpinID     uuid.UUID    `json:"spin_id"`
	AccountID  string       `json:"account_id"`
	Reels      slots.Reels  `json:"reels"`
	Wager      int64        `json:"wager"`
	Payout     slots.Payout `json:"payout"`
	NewBalance int64        `json:"new_balance"`
}

// IsWin reports whether the spin paid anything.
func (o Outcome) IsWin() bool {
	return o.Payout.IsWin()
}

// Notifier is the adapter side of a bet. AnnounceSpin delivers the
// "spinning" acknowledgement; failing it refunds the wager. Reply is the
// fallback channel when an announcement cannot be turned into the result.
type Notifier interface {
	AnnounceSpin(ctx context.Context, bet Bet) (Announcement, error)
	Reply(ctx context.Context, outcome Outcome) error
}

// Announcement is a delivered "spinning" message that can later be turned
// into the result.
type Announcement interface {
	Reveal(ctx context.Context, outcome Outcome) error
}

// NopNotifier accepts every announcement and drops every reveal. Used by
// callers that return the outcome synchronously, like the HTTP API.
type NopNotifier struct{}

func (NopNotifier) AnnounceSpin(context.Context, Bet) (Announcement, error) { return nopAnnouncement{}, nil }
func (NopNotifier) Reply(context.Context, Outcome) error { return nil }

type nopAnnouncement struct{}

func (nopAnnouncement) Reveal(context.Context, Outcome) error { return nil }
