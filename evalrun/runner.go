/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package evalrun

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leemthompo/elasticsearch-labs/evals"
	"github.com/leemthompo/elasticsearch-labs/judge"
)

// DefaultConcurrency bounds the worker pool when the caller does not.
const DefaultConcurrency = 4

// Sink persists result rows as they are produced.
type Sink interface {
	Insert(ctx context.Context, row evals.Row) error
}

// Runner judges datasets.
type Runner struct {
	judge       judge.Interface
	observer    evals.Observer
	sink        Sink
	concurrency int
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver reports per-judgment events, e.g. to Prometheus.
func WithObserver(o evals.Observer) Option {
	return func(r *Runner) {
		r.observer = o
	}
}

// WithSink persists every row as it is produced.
func WithSink(s Sink) Option {
	return func(r *Runner) {
		r.sink = s
	}
}

// WithConcurrency sets the worker pool size.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// New creates a runner around a judge.
func New(j judge.Interface, opts ...Option) (*Runner, error) {
	if j == nil {
		return nil, fmt.Errorf("judge is required")
	}
	r := &Runner{
		judge:       j,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be positive, got %d", r.concurrency)
	}
	return r, nil
}

// Result is the outcome of one run.
type Result struct {
	// RunID uniquely identifies the run, also in the sink.
	RunID string

	// Rows holds every successful judgment, ordered by dataset position.
	Rows []evals.Row

	// Summary aggregates Rows.
	Summary evals.Summary

	// Failed counts pairs whose judgment errored.
	Failed int
}

// Run judges every pair in the dataset under the given task, sampling
// each pair the given number of times.
func (r *Runner) Run(ctx context.Context, task string, samples int, ds *evals.Dataset) (*Result, error) {
	log := clog.FromContext(ctx)

	if ds == nil || len(ds.Pairs) == 0 {
		return nil, fmt.Errorf("dataset has no pairs")
	}
	if _, err := judge.LookupTask(task); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log.With("run_id", runID).
		With("task", task).
		With("pairs", len(ds.Pairs)).
		With("samples", samples).
		Info("Starting evaluation run")

	collector := evals.NewCollector()
	var failed atomic.Int64

	// ordered preserves dataset order for the final result.
	ordered := make([]*evals.Row, len(ds.Pairs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)
	for i, pair := range ds.Pairs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			verdict, err := r.judge.Judge(ctx, pair.Request(task, samples))
			if err != nil {
				failed.Add(1)
				if r.observer != nil {
					r.observer.Fail(task)
				}
				log.With("query_id", pair.QueryID).
					With("doc_id", pair.DocID).
					With("error", err).
					Warn("Judgment failed")
				return ctx.Err()
			}

			row := evals.Row{
				RunID:      runID,
				Task:       task,
				QueryID:    pair.QueryID,
				Query:      pair.Query,
				DocID:      pair.DocID,
				Label:      verdict.Label,
				HumanLabel: pair.HumanLabel,
				Agreement:  verdict.Agreement,
				RawSamples: verdict.RawSamples,
				Model:      verdict.Model,
			}
			collector.Add(row)
			ordered[i] = &row

			if r.observer != nil {
				r.observer.Observe(row)
			}
			if r.sink != nil {
				if err := r.sink.Insert(ctx, row); err != nil {
					return fmt.Errorf("failed to persist row for query %q doc %q: %w", pair.QueryID, pair.DocID, err)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("run %s aborted: %w", runID, err)
	}

	rows := make([]evals.Row, 0, collector.Len())
	for _, row := range ordered {
		if row != nil {
			rows = append(rows, *row)
		}
	}

	result := &Result{
		RunID:   runID,
		Rows:    rows,
		Summary: evals.Summarize(rows),
		Failed:  int(failed.Load()),
	}

	log.With("run_id", runID).
		With("rows", len(rows)).
		With("failed", result.Failed).
		With("accuracy", result.Summary.Accuracy).
		Info("Evaluation run complete")
	return result, nil
}
