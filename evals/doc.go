/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package evals collects relevance-judgment results and computes quality
// metrics against human labels.
//
// # Overview
//
// The evals package provides:
//   - Pair and Dataset types for loading labeled query-document pairs
//     from JSON or YAML files
//   - A thread-safe Collector of result rows
//   - A Prometheus MetricsObserver for long-running evaluation jobs
//   - Summarize, which computes per-label precision/recall/F1, accuracy,
//     macro-F1, and agreement distribution statistics
//
// Result rows are constructed during a run, summarized, and discarded;
// the optional store sink persists them when configured.
package evals
