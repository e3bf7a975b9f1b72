/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package evalrun judges every pair of a dataset with a bounded worker
// pool and aggregates the results.
//
// A run judges pairs concurrently, collects rows into an evals.Collector,
// reports per-judgment events to an optional Observer, and persists rows
// through an optional Sink. Individual pair failures are counted and
// logged rather than aborting the run; only context cancellation stops it
// early.
package evalrun
