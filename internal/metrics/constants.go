package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRejected         = "http_requests_rejected_total"
)

// Game metric names
const (
	MetricNameSpins               = "slotbot_spins_total"
	MetricNameCoinsWagered        = "slotbot_coins_wagered_total"
	MetricNameCoinsPaidOut        = "slotbot_coins_paid_out_total"
	MetricNameBetsRejected        = "slotbot_bets_rejected_total"
	MetricNameBetsRefunded        = "slotbot_bets_refunded_total"
	MetricNameRevealFallbacks     = "slotbot_reveal_fallbacks_total"
	MetricNameDailyClaims         = "slotbot_daily_claims_total"
	MetricNameAdminCredits        = "slotbot_admin_credits_total"
	MetricNameAccounts            = "slotbot_accounts"
	MetricNamePersistenceFailures = "slotbot_persistence_failures_total"
	MetricNameSnapshotDuration    = "slotbot_snapshot_save_duration_seconds"
)

// Chat metric names
const (
	MetricNameChatCommands = "slotbot_chat_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRejected         = "Total number of API requests refused before routing by reason"
)

// Game metric help text
const (
	HelpTextSpins               = "Total number of settled spins by result kind"
	HelpTextCoinsWagered        = "Total coins debited as wagers"
	HelpTextCoinsPaidOut        = "Total coins credited as spin payouts"
	HelpTextBetsRejected        = "Total number of rejected bets by reason"
	HelpTextBetsRefunded        = "Total number of wagers refunded after a delivery failure"
	HelpTextRevealFallbacks     = "Total number of reveals delivered through the fallback channel"
	HelpTextDailyClaims         = "Total number of granted daily bonuses"
	HelpTextAdminCredits        = "Total number of admin credits by outcome"
	HelpTextAccounts            = "Number of known accounts"
	HelpTextPersistenceFailures = "Total number of failed snapshot operations"
	HelpTextSnapshotDuration    = "Snapshot save latency in seconds"
)

// Chat metric help text
const (
	HelpTextChatCommands = "Total number of chat commands received by command"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelKind      = "kind"
	LabelReason    = "reason"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
	LabelCommand   = "command"
)

// ============================================================================
// Label Values
// ============================================================================

// Rejection reasons
const (
	ReasonInvalid      = "invalid"
	ReasonInsufficient = "insufficient_funds"
	ReasonCooldown     = "cooldown"
)

// HTTP rejection reasons
const (
	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
)

// Admin credit outcomes
const (
	OutcomeGranted      = "granted"
	OutcomeUnauthorized = "unauthorized"
)

// Persistence operations
const (
	OperationLoad = "load"
	OperationSave = "save"
)

// UnmatchedRoute labels requests that matched no chi route
const UnmatchedRoute = "unmatched"
