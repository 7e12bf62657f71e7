package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePullsTotal         = "fruit_pulls_total"
	MetricNameRaidsTotal         = "raids_resolved_total"
	MetricNameFruitsStolen       = "fruits_stolen_total"
	MetricNameBerriesAccrued     = "berries_accrued_total"
	MetricNameBerriesCredited    = "berries_credited_total"
	MetricNameBerriesDebited     = "berries_debited_total"
	MetricNameIncomeTickDuration = "income_tick_duration_seconds"
	MetricNameIncomeTickUsers    = "income_tick_users_processed"
	MetricNameIncomeTickErrors   = "income_tick_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPullsTotal         = "Total number of fruit pulls by rarity"
	HelpTextRaidsTotal         = "Total number of raids resolved by outcome"
	HelpTextFruitsStolen       = "Total number of fruits transferred by raids"
	HelpTextBerriesAccrued     = "Total berries credited by passive income"
	HelpTextBerriesCredited    = "Total berries credited by reason"
	HelpTextBerriesDebited     = "Total berries debited by reason"
	HelpTextIncomeTickDuration = "Duration of income scheduler ticks in seconds"
	HelpTextIncomeTickUsers    = "Number of users processed in the last income tick"
	HelpTextIncomeTickErrors   = "Total per-user errors during income ticks"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelReason  = "reason"
	LabelRarity  = "rarity"
	LabelOutcome = "outcome"
)

// Raid outcome label values
const (
	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"
	OutcomeError   = "error"
)
