package game

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SlotBot_Go/internal/cooldown"
	"github.com/osse101/SlotBot_Go/internal/domain"
	"github.com/osse101/SlotBot_Go/internal/economy"
	"github.com/osse101/SlotBot_Go/internal/logger"
	"github.com/osse101/SlotBot_Go/internal/metrics"
)

// Claim is a granted daily bonus.
type Claim struct {
	Amount     int64         `json:"amount"`
	NewBalance int64         `json:"new_balance"`
	ResetIn    time.Duration `json:"reset_in"`
}

// BalanceEvent is the feed payload for a credit outside of a spin.
type BalanceEvent struct {
	AccountID  string `json:"account_id"`
	Amount     int64  `json:"amount"`
	NewBalance int64  `json:"new_balance"`
}

// ClaimDaily grants the daily bonus once per UTC day. A repeat claim returns
// cooldown.ErrAlreadyClaimed with the time until midnight UTC.
func (s *EconomyState) ClaimDaily(ctx context.Context, accountID string) (Claim, error) {
	if accountID == "" {
		return Claim{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyAccountID)
	}

	unlock := s.lock(accountID)
	status := s.gate.CheckDailyClaim(accountID)
	if status.AlreadyClaimed {
		unlock()
		return Claim{}, cooldown.ErrAlreadyClaimed{ResetIn: status.ResetIn}
	}

	// credit and claim token move together under the account lock
	balance, err := s.ledger.Credit(accountID, s.cfg.DailyAmount)
	if err != nil {
		unlock()
		return Claim{}, err
	}
	s.gate.RecordDailyClaim(accountID)
	unlock()

	s.persist(ctx)
	metrics.DailyClaims.Inc()
	logger.FromContext(ctx).Info(LogMsgDailyClaimed,
		"account_id", accountID,
		"amount", s.cfg.DailyAmount,
		"new_balance", balance)

	s.events.Broadcast(EventDailyClaimed, BalanceEvent{
		AccountID:  accountID,
		Amount:     s.cfg.DailyAmount,
		NewBalance: balance,
	})

	return Claim{
		Amount:     s.cfg.DailyAmount,
		NewBalance: balance,
		ResetIn:    status.ResetIn,
	}, nil
}

// AdminCredit adds amount to target. Only the configured admin may call it;
// anyone else gets domain.ErrUnauthorized and nothing changes.
func (s *EconomyState) AdminCredit(ctx context.Context, requesterID, targetID string, amount int64) (int64, error) {
	log := logger.FromContext(ctx).With("requester_id", requesterID, "target_id", targetID, "amount", amount)

	if s.cfg.AdminID == "" || requesterID != s.cfg.AdminID {
		metrics.AdminCredits.WithLabelValues(metrics.OutcomeUnauthorized).Inc()
		log.Warn(LogMsgAdminDenied)
		return 0, domain.ErrUnauthorized
	}
	if targetID == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgInvalidTarget)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgInvalidAmount)
	}

	unlock := s.lock(targetID)
	balance, err := s.ledger.Credit(targetID, amount)
	unlock()
	if err != nil {
		return 0, err
	}

	s.persist(ctx)
	metrics.AdminCredits.WithLabelValues(metrics.OutcomeGranted).Inc()
	log.Info(LogMsgAdminCredit, "new_balance", balance)
	s.events.Broadcast(EventAdminCredited, BalanceEvent{
		AccountID:  targetID,
		Amount:     amount,
		NewBalance: balance,
	})
	return balance, nil
}

// Balance returns the account balance, seeding unseen accounts with the
// starting balance. Seeding is persisted.
func (s *EconomyState) Balance(ctx context.Context, accountID string) (int64, error) {
	if accountID == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyAccountID)
	}

	balance, seeded := s.ledger.Balance(accountID)
	if seeded {
		s.persist(ctx)
	}
	return balance, nil
}

// Leaderboard returns the richest accounts first; ties keep first-seen
// order. limit <= 0 returns every account.
func (s *EconomyState) Leaderboard(limit int) []economy.Standing {
	return s.ledger.Leaderboard(limit)
}

// CooldownRemaining reports how long accountID must wait before betting.
func (s *EconomyState) CooldownRemaining(accountID string) time.Duration {
	return s.gate.CheckCooldown(accountID)
}
