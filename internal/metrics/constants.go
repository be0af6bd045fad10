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

// Collection metric names
const (
	MetricNameItemsCollected    = "grabber_items_collected_total"
	MetricNameCollectorsFull    = "grabber_collectors_full_total"
	MetricNamePlacementFailures = "grabber_placement_failures_total"
	MetricNamePassesAborted     = "grabber_passes_aborted_total"
	MetricNamePassDuration      = "grabber_pass_duration_seconds"
	MetricNameExperienceAwarded = "grabber_experience_awarded_total"
	MetricNameSkillLevelUps     = "grabber_skill_level_ups_total"
	MetricNameDaysAdvanced      = "grabber_days_advanced_total"
	MetricNameObjectsAdded      = "grabber_objects_added_total"
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

// Collection metric help text
const (
	HelpTextItemsCollected    = "Total item units moved into collectors"
	HelpTextCollectorsFull    = "Total number of times a collector filled up during a pass"
	HelpTextPlacementFailures = "Total number of harvests left in the world because the yield did not fit"
	HelpTextPassesAborted     = "Total number of collection passes aborted"
	HelpTextPassDuration      = "Collection pass duration in seconds"
	HelpTextExperienceAwarded = "Total experience awarded to the actor"
	HelpTextSkillLevelUps     = "Total number of skill level ups"
	HelpTextDaysAdvanced      = "Total number of simulated days started"
	HelpTextObjectsAdded      = "Total number of objects reported by world-mutation notifications"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelItem     = "item"
	LabelPass     = "pass"
	LabelReason   = "reason"
	LabelSkill    = "skill"
	LabelLocation = "location"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PassDurationBuckets covers collection passes from 100µs to 1s
var PassDurationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
