package game

import (
	"fmt"

	"github.com/osse101/SlotBot_Go/internal/domain"
)

// Wager validation errors. Both match domain.ErrInvalidInput.
var (
	ErrMissingWager = fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgMissingWager)
	ErrBadWager     = fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgInvalidWager)
)

// InsufficientFundsError carries the balance so adapters can show it.
type InsufficientFundsError struct {
	Balance int64
	Wager   int64
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf(ErrMsgInsufficientFundsFmt, e.Balance)
}

// Unwrap lets errors.Is match domain.ErrInsufficientFunds
func (e InsufficientFundsError) Unwrap() error {
	return domain.ErrInsufficientFunds
}
