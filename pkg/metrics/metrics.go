// Package metrics provides Prometheus metrics for the edital analysis
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal tracks completed analyses by auction type and outcome
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edital",
			Subsystem: "analysis",
			Name:      "total",
			Help:      "Total number of document analyses by auction type and status",
		},
		[]string{"tenant_id", "auction_type", "status"},
	)

	// AnalysisDuration tracks full pipeline duration in seconds
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "edital",
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Duration of the analysis pipeline in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"tenant_id"},
	)

	// RiskScore observes the distribution of emitted risk scores
	RiskScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "edital",
			Subsystem: "analysis",
			Name:      "risk_score",
			Help:      "Distribution of overall risk scores",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	// ComplianceIssuesTotal tracks flagged compliance issues
	ComplianceIssuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edital",
			Subsystem: "compliance",
			Name:      "issues_total",
			Help:      "Total number of compliance issues flagged in assessments",
		},
		[]string{"tenant_id"},
	)

	// CacheHitsTotal tracks result-cache hits and misses
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edital",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of result cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	// EventsPublishedTotal tracks analysis events published to Kafka
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "edital",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of analysis events published by status",
		},
		[]string{"event_type", "status"},
	)
)
