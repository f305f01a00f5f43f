package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TransactionsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_processed_total",
			Help: "Total number of transactions scored and stored",
		},
		[]string{"risk_level"},
	)

	MessagesDiscarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_discarded_total",
			Help: "Total number of consumed messages discarded before scoring",
		},
		[]string{"reason"},
	)

	ProcessingFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "processing_failures_total",
			Help: "Total number of messages that failed during persistence",
		},
	)

	AlertsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alerts_created_total",
			Help: "Total number of fraud alerts raised",
		},
	)

	RiskScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "risk_scores",
			Help:    "Distribution of computed risk scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 20),
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		TransactionsProcessed,
		MessagesDiscarded,
		ProcessingFailures,
		AlertsCreated,
		RiskScores,
	)
}
