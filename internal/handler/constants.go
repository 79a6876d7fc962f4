package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgForbidden             = "Not allowed"
	ErrMsgBetRefunded           = "something went wrong, bet has been refunded"
	ErrMsgInvalidLimit          = "limit must be a whole number between 1 and %d"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgDecodeFailedFmt = "Failed to decode %s request"
	LogMsgDecodedFmt      = "%s request decoded"
	LogMsgServiceError    = "Request failed"
)

// Headers and content types
const (
	HeaderContentType = "Content-Type"
	HeaderRetryAfter  = "Retry-After"
	ContentTypeJSON   = "application/json"
	ContentTypeText   = "text/plain; charset=utf-8"
)

// Leaderboard paging
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// AliveMessage is the keep-alive body served at /
const AliveMessage = "slot bot is alive"

// Action names used in request logs
const (
	ActionPlaceBet    = "Place bet"
	ActionClaimDaily  = "Claim daily"
	ActionAdminCredit = "Admin credit"
)
