package economy

// ==================== Defaults ====================

const (
	// DefaultStartingBalance is credited to an account the first time it is seen
	DefaultStartingBalance int64 = 1000

	// DefaultLeaderboardLimit is used by adapters when no limit is given
	DefaultLeaderboardLimit = 10
)

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgNonPositiveAmountFmt    = "amount must be positive, got %d: %w"
	ErrMsgInsufficientBalanceFmt  = "cannot debit %d from balance %d: %w"
	ErrMsgCreditOverflowFmt       = "cannot credit %d to balance %d: %w"
	ErrMsgNegativeRestoredBalance = "negative balance %d for account %s: %w"
)
