/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/leemthompo/elasticsearch-labs/evals"
	"github.com/leemthompo/elasticsearch-labs/judge"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndRows(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	want := []evals.Row{{
		RunID:      "run-1",
		Task:       judge.TaskRelevance,
		QueryID:    "q1",
		Query:      "tuning bm25",
		DocID:      "d1",
		Label:      judge.Relevant,
		HumanLabel: judge.Relevant,
		Agreement:  1.0,
		RawSamples: []string{"Relevant", "Relevant"},
		Model:      "gpt-4o-mini",
	}, {
		RunID:     "run-1",
		Task:      judge.TaskRelevance,
		QueryID:   "q1",
		Query:     "tuning bm25",
		DocID:     "d2",
		Label:     judge.Unparsable,
		Agreement: 0.5,
		Model:     "gpt-4o-mini",
	}}

	for _, row := range want {
		require.NoError(t, s.Insert(ctx, row))
	}
	// A row from another run must not leak into the query.
	require.NoError(t, s.Insert(ctx, evals.Row{
		RunID: "run-2", Task: judge.TaskRelevance, QueryID: "q9",
		Query: "other", DocID: "d9", Label: judge.Relevant,
		Agreement: 1.0, Model: "gpt-4o-mini",
	}))

	got, err := s.Rows(ctx, "run-1")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestRuns(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	rows := []evals.Row{
		{RunID: "run-1", Task: judge.TaskRelevance, QueryID: "q1", Query: "x", DocID: "d1", Label: judge.Relevant, HumanLabel: judge.Relevant, Agreement: 1.0, Model: "m"},
		{RunID: "run-1", Task: judge.TaskRelevance, QueryID: "q1", Query: "x", DocID: "d2", Label: judge.NotRelevant, HumanLabel: judge.Relevant, Agreement: 0.6, Model: "m"},
		{RunID: "run-1", Task: judge.TaskRelevance, QueryID: "q2", Query: "y", DocID: "d3", Label: judge.Unparsable, Agreement: 0.4, Model: "m"},
	}
	for _, row := range rows {
		require.NoError(t, s.Insert(ctx, row))
	}

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	require.Equal(t, "run-1", run.RunID)
	require.Equal(t, judge.TaskRelevance, run.Task)
	require.Equal(t, 3, run.Rows)
	require.Equal(t, 2, run.Scored)
	require.Equal(t, 1, run.Correct)
	require.Equal(t, 1, run.Unparsable)
}

func TestOpenFileBacked(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.db")
	ctx := context.Background()

	s, err := Open(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.Insert(ctx, evals.Row{
		RunID: "run-1", Task: judge.TaskRelevance, QueryID: "q1",
		Query: "x", DocID: "d1", Label: judge.Relevant, Agreement: 1.0, Model: "m",
	}))
	require.NoError(t, s.Close())

	// Rows survive reopening the same file.
	s, err = Open(Config{Path: path})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Rows(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, judge.Relevant, got[0].Label)
}
