package game

import "time"

// ==================== Defaults ====================

const (
	DefaultRevealDelay = 3 * time.Second
	DefaultDailyAmount = int64(50)
)

// ==================== Feed Events ====================

const (
	EventSpinRevealed  = "spin.revealed"
	EventDailyClaimed  = "daily.claimed"
	EventAdminCredited = "balance.credited"
)

// ==================== Error Messages ====================

const (
	ErrMsgInsufficientFundsFmt = "not enough coins. your balance: %d"
	ErrMsgEmptyAccountID       = "account id is required"
	ErrMsgBetOverLimitFmt      = "bet of %d could pay out past the balance limit: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBetAccepted        = "Bet accepted"
	LogMsgBetRejected        = "Bet rejected"
	LogMsgBetSettled         = "Bet settled"
	LogMsgAnnounceFailed     = "Failed to announce spin, refunding wager"
	LogMsgRevealFailed       = "Failed to reveal spin, falling back to reply"
	LogMsgFallbackFailed     = "Fallback reply failed, result not delivered"
	LogMsgRevealDelivered    = "Spin revealed"
	LogMsgDailyClaimed       = "Daily bonus claimed"
	LogMsgAdminCredit        = "Admin credit applied"
	LogMsgAdminDenied        = "Admin credit denied"
	LogMsgSnapshotSaved      = "Snapshot saved"
	LogMsgSnapshotSaveFailed = "Failed to save snapshot"
	LogMsgSnapshotLoadFailed = "Failed to load snapshot, starting with empty state"
	LogMsgSnapshotRestored   = "Snapshot restored"
)
