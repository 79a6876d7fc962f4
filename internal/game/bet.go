package game

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/SlotBot_Go/internal/cooldown"
	"github.com/osse101/SlotBot_Go/internal/domain"
	"github.com/osse101/SlotBot_Go/internal/logger"
	"github.com/osse101/SlotBot_Go/internal/metrics"
	"github.com/osse101/SlotBot_Go/internal/slots"
)

// Spin is an accepted, settled bet whose reveal may still be pending. The
// outcome is already applied to the ledger when PlaceBet returns.
type Spin struct {
	Outcome

	once      sync.Once
	revealed  chan struct{}
	revealErr error
}

func newSpin(o Outcome) *Spin {
	return &Spin{Outcome: o, revealed: make(chan struct{})}
}

// Revealed is closed once the result has been delivered, or delivery has
// definitively failed.
func (s *Spin) Revealed() <-chan struct{} {
	return s.revealed
}

// RevealErr is the delivery error, valid after Revealed is closed. It is nil
// when either the reveal or the fallback reply succeeded.
func (s *Spin) RevealErr() error {
	<-s.revealed
	return s.revealErr
}

func (s *Spin) finish(err error) {
	s.once.Do(func() {
		s.revealErr = err
		close(s.revealed)
	})
}

// PlaceBet validates and settles a bet, then schedules its reveal.
//
// Funds and cooldown are checked, the wager debited and the cooldown stamped
// in one critical section for the account. The notifier then announces the
// spin; if that fails the wager is refunded and ErrDeliveryFailure returned.
// Otherwise the reels are drawn and the payout credited immediately, so the
// balance reflects the outcome during the reveal delay.
func (s *EconomyState) PlaceBet(ctx context.Context, accountID string, wager int64, notifier Notifier) (*Spin, error) {
	log := logger.FromContext(ctx).With("account_id", accountID, "wager", wager)

	if accountID == "" {
		metrics.BetsRejected.WithLabelValues(metrics.ReasonInvalid).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyAccountID)
	}
	if wager <= 0 {
		metrics.BetsRejected.WithLabelValues(metrics.ReasonInvalid).Inc()
		return nil, ErrBadWager
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	seeded, err := s.debitForBet(accountID, wager)
	if err != nil {
		if seeded {
			s.persist(ctx)
		}
		log.Debug(LogMsgBetRejected, "reason", err.Error())
		return nil, err
	}
	metrics.CoinsWagered.Add(float64(wager))
	s.persist(ctx)

	bet := Bet{SpinID: uuid.New(), AccountID: accountID, Wager: wager}
	log = log.With("spin_id", bet.SpinID)
	log.Info(LogMsgBetAccepted)

	announcement, err := notifier.AnnounceSpin(ctx, bet)
	if err != nil {
		log.Error(LogMsgAnnounceFailed, "error", err)
		unlock := s.lock(accountID)
		_, refundErr := s.ledger.Credit(accountID, wager)
		unlock()
		s.persist(ctx)
		metrics.BetsRefunded.Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, errors.Join(err, refundErr))
	}

	outcome := s.settle(accountID, bet, wager)
	s.persist(ctx)

	metrics.Spins.WithLabelValues(string(outcome.Payout.Kind)).Inc()
	if outcome.Payout.Amount > 0 {
		metrics.CoinsPaidOut.Add(float64(outcome.Payout.Amount))
	}
	log.Info(LogMsgBetSettled,
		"reels", outcome.Reels.String(),
		"kind", outcome.Payout.Kind,
		"payout", outcome.Payout.Amount,
		"new_balance", outcome.NewBalance)

	spin := newSpin(outcome)
	s.reveals.Schedule(s.cfg.RevealDelay, func(revealCtx context.Context) {
		revealCtx = logger.CarryRequestID(revealCtx, ctx)
		spin.finish(s.reveal(revealCtx, announcement, notifier, outcome))
		// the feed trails the chat reveal so it never spoils a result
		s.events.Broadcast(EventSpinRevealed, outcome)
	})
	return spin, nil
}

// debitForBet is the atomic check + debit + cooldown stamp. seeded reports
// whether the account was created by this call and needs persisting even on
// rejection.
func (s *EconomyState) debitForBet(accountID string, wager int64) (seeded bool, err error) {
	unlock := s.lock(accountID)
	defer unlock()

	balance, seeded := s.ledger.Balance(accountID)

	if wager > balance {
		metrics.BetsRejected.WithLabelValues(metrics.ReasonInsufficient).Inc()
		return seeded, InsufficientFundsError{Balance: balance, Wager: wager}
	}

	// the best possible draw must still fit in the balance
	if maxPayout := s.drawer.Table().MaxPayout(wager); maxPayout == math.MaxInt64 || maxPayout > math.MaxInt64-(balance-wager) {
		metrics.BetsRejected.WithLabelValues(metrics.ReasonInvalid).Inc()
		return seeded, fmt.Errorf(ErrMsgBetOverLimitFmt, wager, domain.ErrBalanceLimit)
	}

	if remaining := s.gate.CheckCooldown(accountID); remaining > 0 {
		metrics.BetsRejected.WithLabelValues(metrics.ReasonCooldown).Inc()
		return seeded, cooldown.ErrOnCooldown{Remaining: remaining}
	}

	if _, err := s.ledger.Debit(accountID, wager); err != nil {
		return seeded, err
	}
	s.gate.RecordBet(accountID)
	return seeded, nil
}

// settle draws, evaluates and credits the payout.
func (s *EconomyState) settle(accountID string, bet Bet, wager int64) Outcome {
	reels := s.drawer.DrawReels()
	payout := slots.Evaluate(s.drawer.Table(), reels, wager)

	unlock := s.lock(accountID)
	defer unlock()

	var balance int64
	if payout.Amount > 0 {
		// debitForBet already ruled out overflow for this wager
		balance, _ = s.ledger.Credit(accountID, payout.Amount)
	} else {
		balance, _ = s.ledger.Balance(accountID)
	}

	return Outcome{
		SpinID:     bet.SpinID,
		AccountID:  accountID,
		Reels:      reels,
		Wager:      wager,
		Payout:     payout,
		NewBalance: balance,
	}
}

// reveal delivers the outcome, falling back to a plain reply. The payout
// stands whatever happens here.
func (s *EconomyState) reveal(ctx context.Context, announcement Announcement, notifier Notifier, outcome Outcome) error {
	log := logger.FromContext(ctx).With("account_id", outcome.AccountID, "spin_id", outcome.SpinID)

	err := announcement.Reveal(ctx, outcome)
	if err == nil {
		log.Debug(LogMsgRevealDelivered)
		return nil
	}

	log.Warn(LogMsgRevealFailed, "error", fmt.Errorf("%w: %w", domain.ErrRevealDelivery, err))
	metrics.RevealFallbacks.Inc()

	if fbErr := notifier.Reply(ctx, outcome); fbErr != nil {
		joined := fmt.Errorf("%w: %w", domain.ErrRevealDelivery, errors.Join(err, fbErr))
		log.Error(LogMsgFallbackFailed, "error", joined)
		return joined
	}
	return nil
}
