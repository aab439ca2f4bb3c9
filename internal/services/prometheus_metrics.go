package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerOperations  *prometheus.CounterVec
	authEvents        *prometheus.CounterVec
	transactionAmount prometheus.Histogram
	accountsTotal     prometheus.Gauge
	sessionActive     prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ledgerOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "status"},
		),
		authEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		transactionAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_amount",
				Help:    "Transaction amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		accountsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "accounts_total",
				Help: "Current number of accounts in the ledger",
			},
		),
		sessionActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "session_active",
				Help: "Whether a ledger session is currently active (0 or 1)",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger_operations":
		m.ledgerOperations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case "auth_events":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEvents.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordAmount(name string, amount float64) {
	if name == "transaction_amount" {
		m.transactionAmount.Observe(amount)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64) {
	switch name {
	case "accounts_total":
		m.accountsTotal.Set(value)
	case "session_active":
		m.sessionActive.Set(value)
	}
}

// noopMetrics discards all recordings; used in tests and when metrics are
// not wired
type noopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return noopMetrics{} }

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordAmount(string, float64)               {}
func (noopMetrics) RecordGauge(string, float64)                {}
