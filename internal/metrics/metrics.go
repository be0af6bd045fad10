package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Collection Metrics
var (
	ItemsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCollected,
			Help: HelpTextItemsCollected,
		},
		[]string{LabelPass, LabelItem},
	)

	CollectorsFull = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCollectorsFull,
			Help: HelpTextCollectorsFull,
		},
		[]string{LabelPass},
	)

	PlacementFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlacementFailures,
			Help: HelpTextPlacementFailures,
		},
		[]string{LabelPass},
	)

	PassesAborted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePassesAborted,
			Help: HelpTextPassesAborted,
		},
		[]string{LabelPass, LabelReason},
	)

	PassDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePassDuration,
			Help:    HelpTextPassDuration,
			Buckets: PassDurationBuckets,
		},
		[]string{LabelPass},
	)

	ExperienceAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExperienceAwarded,
			Help: HelpTextExperienceAwarded,
		},
		[]string{LabelSkill},
	)

	SkillLevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkillLevelUps,
			Help: HelpTextSkillLevelUps,
		},
		[]string{LabelSkill},
	)

	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	ObjectsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameObjectsAdded,
			Help: HelpTextObjectsAdded,
		},
		[]string{LabelLocation},
	)
)
