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

// Game metric names
const (
	MetricNameCommandsProcessed = "game_commands_processed_total"
	MetricNameQuestsCompleted   = "game_quests_completed_total"
	MetricNameCharactersCreated = "game_characters_created_total"
	MetricNameCharacterLevelUps = "game_character_level_ups_total"
	MetricNameFilterRejections  = "game_filter_rejections_total"
	MetricNameExperienceAwarded = "game_experience_awarded_total"
	MetricNameGoldAwarded       = "game_gold_awarded_total"
)

// AI provider metric names
const (
	MetricNameAIRequests        = "ai_requests_total"
	MetricNameAIRequestDuration = "ai_request_duration_seconds"
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

// Game metric help text
const (
	HelpTextCommandsProcessed = "Total number of player commands processed"
	HelpTextQuestsCompleted   = "Total number of quests completed"
	HelpTextCharactersCreated = "Total number of characters created"
	HelpTextCharacterLevelUps = "Total number of character level-ups"
	HelpTextFilterRejections  = "Total number of content filter rejections"
	HelpTextExperienceAwarded = "Total experience awarded from quest completions"
	HelpTextGoldAwarded       = "Total gold awarded from quest completions"
)

// AI provider metric help text
const (
	HelpTextAIRequests        = "Total number of AI provider requests"
	HelpTextAIRequestDuration = "AI provider request latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCommand = "command"
	LabelQuest   = "quest"
	LabelClass   = "class"
	LabelStage   = "stage"
	LabelKind    = "kind"
)

// AI request kind label values
const (
	AIKindText   = "text"
	AIKindImage  = "image"
	AIKindSpeech = "speech"
)

// AI request status label values
const (
	AIStatusOK    = "ok"
	AIStatusError = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// AILatencyBuckets covers generative provider latency, which routinely runs
// into tens of seconds for image generation.
var AILatencyBuckets = []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
