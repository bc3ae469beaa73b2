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

// Command metric names
const (
	MetricNameCommandsHandled = "eggbot_commands_total"
	MetricNameCommandErrors   = "eggbot_command_errors_total"
	MetricNamePromptTimeouts  = "eggbot_prompt_timeouts_total"
)

// Egg metric names
const (
	MetricNameEggsCreated  = "eggbot_eggs_created_total"
	MetricNameEggsDied     = "eggbot_eggs_died_total"
	MetricNameEggsRevived  = "eggbot_eggs_revived_total"
	MetricNameEggsDisowned = "eggbot_eggs_disowned_total"
	MetricNameCareActions  = "eggbot_care_actions_total"
)

// Relationship metric names
const (
	MetricNameMarriages = "eggbot_marriages_total"
	MetricNameBreakups  = "eggbot_breakups_total"
)

// Economy metric names
const (
	MetricNameCoinsMinted    = "eggbot_coins_minted_total"
	MetricNameCoinsBurned    = "eggbot_coins_burned_total"
	MetricNameItemsPurchased = "eggbot_items_purchased_total"
	MetricNameBets           = "eggbot_bets_total"
	MetricNameRobberies      = "eggbot_robberies_total"
)

// ============================================================================
// Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being processed"

	HelpTextCommandsHandled = "Total number of chat commands handled"
	HelpTextCommandErrors   = "Total number of chat commands that failed with an internal error"
	HelpTextPromptTimeouts  = "Total number of interactive prompts that lapsed"

	HelpTextEggsCreated  = "Total number of eggs created"
	HelpTextEggsDied     = "Total number of eggs observed dead"
	HelpTextEggsRevived  = "Total number of eggs revived"
	HelpTextEggsDisowned = "Total number of eggs disowned"
	HelpTextCareActions  = "Total number of care actions performed"

	HelpTextMarriages = "Total number of accepted marriage proposals"
	HelpTextBreakups  = "Total number of breakups"

	HelpTextCoinsMinted    = "Total coins created by daily claims, grants and winning bets"
	HelpTextCoinsBurned    = "Total coins destroyed by purchases, removals, lost bets and failed robberies"
	HelpTextItemsPurchased = "Total number of shop purchases"
	HelpTextBets           = "Total number of settled bets"
	HelpTextRobberies      = "Total number of robbery attempts"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelPrompt  = "prompt"
	LabelAction  = "action"
	LabelSource  = "source"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// UnmatchedRoute labels requests that matched no chi route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets is tuned for small in-process handlers
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
