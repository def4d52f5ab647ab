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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Garden metric names
const (
	MetricNameCareActions          = "garden_care_actions_total"
	MetricNameLevelUps             = "garden_level_ups_total"
	MetricNameCurrencyEarned       = "garden_currency_earned_total"
	MetricNameExperienceGained     = "garden_experience_gained_total"
	MetricNamePlantChanges         = "garden_plant_changes_total"
	MetricNameCooldownRejections   = "garden_cooldown_rejections_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameChallengeJoins       = "challenge_joins_total"
	MetricNameChallengeCompletions = "challenge_completions_total"
	MetricNameChallengeRewards     = "challenge_reward_currency_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Garden metric help text
const (
	HelpTextCareActions          = "Total number of committed care actions"
	HelpTextLevelUps             = "Total number of plants that reached the maximum level"
	HelpTextCurrencyEarned       = "Total currency earned from care actions"
	HelpTextExperienceGained     = "Total experience gained from care actions"
	HelpTextPlantChanges         = "Total number of plants added or removed"
	HelpTextCooldownRejections   = "Total number of care actions rejected by the cooldown"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextChallengeJoins       = "Total number of challenge enrollments"
	HelpTextChallengeCompletions = "Total number of completed challenge participations"
	HelpTextChallengeRewards     = "Total currency credited from challenge rewards"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelAction    = "action"
	LabelChange    = "change"
	LabelRarity    = "rarity"
	LabelChallenge = "challenge"
)

// Plant change label values
const (
	ChangeAdded   = "added"
	ChangeRemoved = "removed"
)

// PathUnmatched labels requests no route matched, keeping label cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
