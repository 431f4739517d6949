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

// Game Metrics
var (
	CommandsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsProcessed,
			Help: HelpTextCommandsProcessed,
		},
		[]string{LabelCommand},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelQuest},
	)

	CharactersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCharactersCreated,
			Help: HelpTextCharactersCreated,
		},
		[]string{LabelClass},
	)

	CharacterLevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCharacterLevelUps,
			Help: HelpTextCharacterLevelUps,
		},
	)

	FilterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFilterRejections,
			Help: HelpTextFilterRejections,
		},
		[]string{LabelStage},
	)

	ExperienceAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceAwarded,
			Help: HelpTextExperienceAwarded,
		},
	)

	GoldAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldAwarded,
			Help: HelpTextGoldAwarded,
		},
	)
)

// AI Provider Metrics
var (
	AIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAIRequests,
			Help: HelpTextAIRequests,
		},
		[]string{LabelKind, LabelStatus},
	)

	AIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameAIRequestDuration,
			Help:    HelpTextAIRequestDuration,
			Buckets: AILatencyBuckets,
		},
		[]string{LabelKind},
	)
)
