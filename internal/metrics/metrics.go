package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5}

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

	HTTPRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRejected,
			Help: HelpTextHTTPRejected,
		},
		[]string{LabelReason},
	)
)

// Game Metrics
var (
	Spins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpins,
			Help: HelpTextSpins,
		},
		[]string{LabelKind},
	)

	CoinsWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsWagered,
			Help: HelpTextCoinsWagered,
		},
	)

	CoinsPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsPaidOut,
			Help: HelpTextCoinsPaidOut,
		},
	)

	BetsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBetsRejected,
			Help: HelpTextBetsRejected,
		},
		[]string{LabelReason},
	)

	BetsRefunded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBetsRefunded,
			Help: HelpTextBetsRefunded,
		},
	)

	RevealFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRevealFallbacks,
			Help: HelpTextRevealFallbacks,
		},
	)

	DailyClaims = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyClaims,
			Help: HelpTextDailyClaims,
		},
	)

	AdminCredits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdminCredits,
			Help: HelpTextAdminCredits,
		},
		[]string{LabelOutcome},
	)

	Accounts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAccounts,
			Help: HelpTextAccounts,
		},
	)
)

// Persistence Metrics
var (
	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
		[]string{LabelOperation},
	)

	SnapshotDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSnapshotDuration,
			Help:    HelpTextSnapshotDuration,
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Chat Metrics
var (
	ChatCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameChatCommands,
			Help: HelpTextChatCommands,
		},
		[]string{LabelCommand},
	)
)
