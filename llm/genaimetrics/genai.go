/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package genaimetrics records OpenTelemetry metrics for model inference:
// prompt/completion token usage and sampled generation counts, dimensioned
// by model name.
package genaimetrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI holds the instruments for one meter. Counter creation degrades
// gracefully: a failed instrument is replaced with a no-op so inference
// never fails because of metrics.
type GenAI struct {
	meter            metric.Meter
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	samples          metric.Int64Counter
}

// New creates a GenAI metrics instance on the named meter. The meter name
// should be shared across executors (e.g. "elasticsearch.labs.llm"), with
// the model name as a dimension on each recorded metric.
func New(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	samples, err := meter.Int64Counter("genai.samples",
		metric.WithDescription("The number of sampled generations requested"),
		metric.WithUnit("{samples}"))
	if err != nil {
		slog.Warn("Failed to create samples counter, metrics will be disabled", "error", err, "meter", meterName)
		samples = noop.Int64Counter{}
	}

	return &GenAI{
		meter:            meter,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
		samples:          samples,
	}
}

// RecordTokens records prompt and completion token usage for a model.
func (m *GenAI) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64, attrs ...attribute.KeyValue) {
	baseAttrs := append([]attribute.KeyValue{
		attribute.String("model", model),
	}, attrs...)

	m.promptTokens.Add(ctx, promptTokens, metric.WithAttributes(baseAttrs...))
	m.completionTokens.Add(ctx, completionTokens, metric.WithAttributes(baseAttrs...))
}

// RecordSamples records how many sampled generations one request produced.
func (m *GenAI) RecordSamples(ctx context.Context, model string, n int64, attrs ...attribute.KeyValue) {
	baseAttrs := append([]attribute.KeyValue{
		attribute.String("model", model),
	}, attrs...)

	m.samples.Add(ctx, n, metric.WithAttributes(baseAttrs...))
}
