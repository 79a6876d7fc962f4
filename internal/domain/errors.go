package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidWager  = "bet must be a positive whole number"
	ErrMsgMissingWager  = "please provide a bet amount"
	ErrMsgInvalidTarget = "invalid target account"
	ErrMsgInvalidAmount = "amount must be a positive whole number"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgBalanceLimit      = "balance limit exceeded"

	// Admin errors
	ErrMsgUnauthorized = "not authorized"

	// Delivery errors
	ErrMsgDeliveryFailure = "failed to deliver spin announcement"
	ErrMsgRevealDelivery  = "failed to deliver spin result"

	// Persistence errors
	ErrMsgPersistence       = "persistence failure"
	ErrMsgMalformedSnapshot = "malformed snapshot"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidInput covers non-integer, non-positive or over-limit inputs.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	// ErrBalanceLimit rejects a credit or bet that could push a balance past
	// math.MaxInt64. It also matches ErrInvalidInput.
	ErrBalanceLimit = fmt.Errorf("%s: %w", ErrMsgBalanceLimit, ErrInvalidInput)

	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	// ErrDeliveryFailure is returned when the spin announcement could not be sent.
	// The wager has been refunded when a caller sees it.
	ErrDeliveryFailure = errors.New(ErrMsgDeliveryFailure)

	// ErrRevealDelivery is only logged; the payout already stands.
	ErrRevealDelivery = errors.New(ErrMsgRevealDelivery)

	ErrPersistence       = errors.New(ErrMsgPersistence)
	ErrMalformedSnapshot = errors.New(ErrMsgMalformedSnapshot)
)
