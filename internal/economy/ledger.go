package economy

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/SlotBot_Go/internal/domain"
)

// Standing is one leaderboard row.
type Standing struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

// Ledger owns every account balance. Accounts are created lazily with the
// starting balance and never removed. Balances never go negative.
//
// The ledger guards its own map; callers that need check-then-mutate
// sequences across several calls serialize them per account themselves.
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]int64
	order    []string // insertion order, for leaderboard ties
	starting int64
}

// NewLedger creates an empty ledger. A non-positive starting balance falls
// back to DefaultStartingBalance.
func NewLedger(startingBalance int64) *Ledger {
	if startingBalance <= 0 {
		startingBalance = DefaultStartingBalance
	}
	return &Ledger{
		balances: make(map[string]int64),
		starting: startingBalance,
	}
}

// StartingBalance returns the balance new accounts are seeded with.
func (l *Ledger) StartingBalance() int64 {
	return l.starting
}

// Balance returns the account balance. seeded is true when this call created
// the account, which callers must persist.
func (l *Ledger) Balance(accountID string) (balance int64, seeded bool) {
	l.mu.RLock()
	balance, ok := l.balances[accountID]
	l.mu.RUnlock()
	if ok {
		return balance, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seedLocked(accountID)
}

// Debit removes amount from the account. It re-validates the balance so a
// racing caller can never drive it negative.
func (l *Ledger) Debit(accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf(ErrMsgNonPositiveAmountFmt, amount, domain.ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, _ := l.seedLocked(accountID)
	if amount > balance {
		return balance, fmt.Errorf(ErrMsgInsufficientBalanceFmt, amount, balance, domain.ErrInsufficientFunds)
	}

	balance -= amount
	l.balances[accountID] = balance
	return balance, nil
}

// Credit adds amount to the account. Used for payouts, daily bonuses, admin
// grants and refunds. There is no upper bound.
func (l *Ledger) Credit(accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf(ErrMsgNonPositiveAmountFmt, amount, domain.ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance, _ := l.seedLocked(accountID)
	if amount > math.MaxInt64-balance {
		return balance, fmt.Errorf(ErrMsgCreditOverflowFmt, amount, balance, domain.ErrBalanceLimit)
	}
	balance += amount
	l.balances[accountID] = balance
	return balance, nil
}

// Leaderboard returns accounts by balance, highest first. Ties keep insertion
// order. A non-positive limit returns every account.
func (l *Ledger) Leaderboard(limit int) []Standing {
	l.mu.RLock()
	standings := make([]Standing, 0, len(l.order))
	for _, id := range l.order {
		standings = append(standings, Standing{AccountID: id, Balance: l.balances[id]})
	}
	l.mu.RUnlock()

	slices.SortStableFunc(standings, func(a, b Standing) int {
		switch {
		case a.Balance > b.Balance:
			return -1
		case a.Balance < b.Balance:
			return 1
		default:
			return 0
		}
	})

	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	return standings
}

// Snapshot copies every balance.
func (l *Ledger) Snapshot() map[string]int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.balances)
}

// Restore replaces all balances. Restored accounts are ordered by id, since a
// snapshot carries no insertion order.
func (l *Ledger) Restore(balances map[string]int64) error {
	for id, b := range balances {
		if b < 0 {
			return fmt.Errorf(ErrMsgNegativeRestoredBalance, b, id, domain.ErrMalformedSnapshot)
		}
	}

	ids := slices.Collect(maps.Keys(balances))
	slices.SortFunc(ids, strings.Compare)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances = make(map[string]int64, len(balances))
	maps.Copy(l.balances, balances)
	l.order = ids
	return nil
}

// Len returns the number of known accounts.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.balances)
}

func (l *Ledger) seedLocked(accountID string) (int64, bool) {
	if balance, ok := l.balances[accountID]; ok {
		return balance, false
	}
	l.balances[accountID] = l.starting
	l.order = append(l.order, accountID)
	return l.starting, true
}
