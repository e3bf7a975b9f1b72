/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package report_test

import (
	"strings"
	"testing"

	"github.com/leemthompo/elasticsearch-labs/evals"
	"github.com/leemthompo/elasticsearch-labs/evals/report"
	"github.com/leemthompo/elasticsearch-labs/judge"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	rows := []evals.Row{
		{QueryID: "q1", DocID: "d1", Label: judge.Relevant, HumanLabel: judge.Relevant, Agreement: 1.0},
		{QueryID: "q1", DocID: "d2", Label: judge.Relevant, HumanLabel: judge.NotRelevant, Agreement: 0.6},
		{QueryID: "q2", DocID: "d3", Label: judge.NotRelevant, HumanLabel: judge.NotRelevant, Agreement: 0.8},
	}

	out := report.Summary("bm25-sample", evals.Summarize(rows))

	if !strings.Contains(out, "## bm25-sample") {
		t.Errorf("report missing heading:\n%s", out)
	}
	for _, want := range []string{
		"Pairs judged", "Accuracy", "Macro F1", "Mean agreement",
		"Precision", "Recall", "Support",
		string(judge.Relevant), string(judge.NotRelevant),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	// Markdown table separators from the renderer.
	if !strings.Contains(out, "|") {
		t.Errorf("report is not tabular:\n%s", out)
	}
}

func TestSummaryWithoutGoldLabels(t *testing.T) {
	t.Parallel()

	rows := []evals.Row{
		{QueryID: "q1", DocID: "d1", Label: judge.Relevant, Agreement: 0.8},
	}

	out := report.Summary("unlabeled", evals.Summarize(rows))
	if !strings.Contains(out, "Pairs judged") {
		t.Errorf("report missing overall table:\n%s", out)
	}
	// No per-label table without gold labels.
	if strings.Contains(out, "Precision") {
		t.Errorf("unexpected per-label table:\n%s", out)
	}
}

func TestRows(t *testing.T) {
	t.Parallel()

	out := report.Rows([]evals.Row{
		{QueryID: "q1", DocID: "d1", Label: judge.Relevant, HumanLabel: judge.Relevant, Agreement: 1.0},
		{QueryID: "q2", DocID: "d2", Label: judge.Unparsable, Agreement: 0.4},
	})

	for _, want := range []string{"q1", "d1", "q2", "d2", string(judge.Unparsable), "1.00", "0.40", "true"} {
		if !strings.Contains(out, want) {
			t.Errorf("rows table missing %q:\n%s", want, out)
		}
	}
}
