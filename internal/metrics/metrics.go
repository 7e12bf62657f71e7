package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets covers the expected API latency range.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

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

// Business Metrics
var (
	PullsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePullsTotal,
			Help: HelpTextPullsTotal,
		},
		[]string{LabelRarity},
	)

	RaidsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRaidsTotal,
			Help: HelpTextRaidsTotal,
		},
		[]string{LabelOutcome},
	)

	FruitsStolen = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFruitsStolen,
			Help: HelpTextFruitsStolen,
		},
	)

	BerriesAccrued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBerriesAccrued,
			Help: HelpTextBerriesAccrued,
		},
	)

	BerriesCredited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBerriesCredited,
			Help: HelpTextBerriesCredited,
		},
		[]string{LabelReason},
	)

	BerriesDebited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBerriesDebited,
			Help: HelpTextBerriesDebited,
		},
		[]string{LabelReason},
	)
)

// Scheduler Metrics
var (
	IncomeTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameIncomeTickDuration,
			Help:    HelpTextIncomeTickDuration,
			Buckets: prometheus.DefBuckets,
		},
	)

	IncomeTickUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameIncomeTickUsers,
			Help: HelpTextIncomeTickUsers,
		},
	)

	IncomeTickErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIncomeTickErrors,
			Help: HelpTextIncomeTickErrors,
		},
	)
)
