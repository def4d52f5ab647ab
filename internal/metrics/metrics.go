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

// Garden Metrics
var (
	CareActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCareActions,
			Help: HelpTextCareActions,
		},
		[]string{LabelAction},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	CurrencyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyEarned,
			Help: HelpTextCurrencyEarned,
		},
	)

	ExperienceGained = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExperienceGained,
			Help: HelpTextExperienceGained,
		},
	)

	PlantChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantChanges,
			Help: HelpTextPlantChanges,
		},
		[]string{LabelChange},
	)

	CooldownRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCooldownRejections,
			Help: HelpTextCooldownRejections,
		},
	)
)

// Achievement and challenge metrics
var (
	AchievementsUnlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
		[]string{LabelRarity},
	)

	ChallengeJoins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChallengeJoins,
			Help: HelpTextChallengeJoins,
		},
		[]string{LabelChallenge},
	)

	ChallengeCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChallengeCompletions,
			Help: HelpTextChallengeCompletions,
		},
		[]string{LabelChallenge},
	)

	ChallengeRewardCurrency = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChallengeRewards,
			Help: HelpTextChallengeRewards,
		},
	)
)
