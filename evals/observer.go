/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/leemthompo/elasticsearch-labs/judge"
)

var (
	// Global metrics with consistent dimensions
	judgmentCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relevance_judgments_total",
			Help: "Total number of relevance judgments performed",
		},
		[]string{"task", "label"},
	)

	unparsableCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relevance_judgments_unparsable_total",
			Help: "Total number of judgments whose winning label was unparsable",
		},
		[]string{"task"},
	)

	failureCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relevance_judgment_failures_total",
			Help: "Total number of judgments that failed with an error",
		},
		[]string{"task"},
	)

	agreementGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "relevance_judgment_agreement",
			Help: "Most recent judgment agreement (0.0-1.0)",
		},
		[]string{"task"},
	)
)

// Observer receives per-judgment events from an evaluation run.
type Observer interface {
	// Observe records one completed judgment.
	Observe(row Row)

	// Fail records one judgment that errored before producing a row.
	Fail(task string)
}

// MetricsObserver implements Observer with Prometheus metrics.
type MetricsObserver struct {
	task string

	unparsable prometheus.Counter
	failures   prometheus.Counter
	agreement  prometheus.Gauge
}

// NewMetricsObserver creates a metrics observer for the given task.
func NewMetricsObserver(task string) *MetricsObserver {
	return &MetricsObserver{
		task: task,
		unparsable: unparsableCounter.With(prometheus.Labels{
			"task": task,
		}),
		failures: failureCounter.With(prometheus.Labels{
			"task": task,
		}),
		agreement: agreementGauge.With(prometheus.Labels{
			"task": task,
		}),
	}
}

// Observe implements Observer.Observe.
func (m *MetricsObserver) Observe(row Row) {
	judgmentCounter.With(prometheus.Labels{
		"task":  m.task,
		"label": string(row.Label),
	}).Inc()
	if row.Label == judge.Unparsable {
		m.unparsable.Inc()
	}
	m.agreement.Set(row.Agreement)
}

// Fail implements Observer.Fail.
func (m *MetricsObserver) Fail(string) {
	m.failures.Inc()
}
