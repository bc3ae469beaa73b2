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

// Command Metrics
var (
	CommandsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsHandled,
			Help: HelpTextCommandsHandled,
		},
		[]string{LabelCommand},
	)

	CommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandErrors,
			Help: HelpTextCommandErrors,
		},
		[]string{LabelCommand},
	)

	PromptTimeouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePromptTimeouts,
			Help: HelpTextPromptTimeouts,
		},
		[]string{LabelPrompt},
	)
)

// Egg Metrics
var (
	EggsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEggsCreated,
			Help: HelpTextEggsCreated,
		},
	)

	EggsDied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEggsDied,
			Help: HelpTextEggsDied,
		},
	)

	EggsRevived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEggsRevived,
			Help: HelpTextEggsRevived,
		},
	)

	EggsDisowned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEggsDisowned,
			Help: HelpTextEggsDisowned,
		},
	)

	CareActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCareActions,
			Help: HelpTextCareActions,
		},
		[]string{LabelAction},
	)
)

// Relationship Metrics
var (
	Marriages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarriages,
			Help: HelpTextMarriages,
		},
	)

	Breakups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBreakups,
			Help: HelpTextBreakups,
		},
	)
)

// Economy Metrics
var (
	CoinsMinted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsMinted,
			Help: HelpTextCoinsMinted,
		},
		[]string{LabelSource},
	)

	CoinsBurned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsBurned,
			Help: HelpTextCoinsBurned,
		},
		[]string{LabelSource},
	)

	ItemsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsPurchased,
			Help: HelpTextItemsPurchased,
		},
		[]string{LabelKind},
	)

	Bets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBets,
			Help: HelpTextBets,
		},
		[]string{LabelOutcome},
	)

	Robberies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRobberies,
			Help: HelpTextRobberies,
		},
		[]string{LabelResult},
	)
)

// Metric source labels for coin flows
const (
	SourceDaily    = "daily"
	SourceGrant    = "grant"
	SourceRemoval  = "removal"
	SourceBet      = "bet"
	SourcePurchase = "purchase"
	SourceRob      = "rob"
)
