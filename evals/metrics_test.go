/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"math"
	"testing"

	"github.com/leemthompo/elasticsearch-labs/judge"
)

func inDelta(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	// Confusion over four scored rows:
	//   gold Relevant:     predicted Relevant, Relevant, Not Relevant
	//   gold Not Relevant: predicted Relevant
	// Relevant:     TP=2 FP=1 FN=1 -> P=2/3 R=2/3 F1=2/3
	// Not Relevant: TP=0 FP=1 FN=1 -> P=0 R=0 F1=0
	rows := []Row{
		{QueryID: "q1", DocID: "d1", Label: judge.Relevant, HumanLabel: judge.Relevant, Agreement: 1.0},
		{QueryID: "q1", DocID: "d2", Label: judge.Relevant, HumanLabel: judge.Relevant, Agreement: 0.6},
		{QueryID: "q1", DocID: "d3", Label: judge.NotRelevant, HumanLabel: judge.Relevant, Agreement: 0.8},
		{QueryID: "q2", DocID: "d4", Label: judge.Relevant, HumanLabel: judge.NotRelevant, Agreement: 0.6},
		// Unlabeled row counts toward agreement but not accuracy.
		{QueryID: "q3", DocID: "d5", Label: judge.Unparsable, Agreement: 1.0},
	}

	s := Summarize(rows)

	if s.Rows != 5 {
		t.Errorf("Rows = %d, want 5", s.Rows)
	}
	if s.Scored != 4 {
		t.Errorf("Scored = %d, want 4", s.Scored)
	}
	if s.Correct != 2 {
		t.Errorf("Correct = %d, want 2", s.Correct)
	}
	inDelta(t, "Accuracy", s.Accuracy, 0.5)
	if s.Unparsable != 1 {
		t.Errorf("Unparsable = %d, want 1", s.Unparsable)
	}
	inDelta(t, "MeanAgreement", s.MeanAgreement, 0.8)

	if len(s.PerLabel) != 2 {
		t.Fatalf("PerLabel = %d entries, want 2", len(s.PerLabel))
	}
	// Sorted by label: "Not Relevant" before "Relevant".
	nr, r := s.PerLabel[0], s.PerLabel[1]
	if nr.Label != judge.NotRelevant || r.Label != judge.Relevant {
		t.Fatalf("PerLabel order = %q, %q", nr.Label, r.Label)
	}

	inDelta(t, "Relevant precision", r.Precision, 2.0/3.0)
	inDelta(t, "Relevant recall", r.Recall, 2.0/3.0)
	inDelta(t, "Relevant F1", r.F1, 2.0/3.0)
	if r.Support != 3 {
		t.Errorf("Relevant support = %d, want 3", r.Support)
	}

	inDelta(t, "Not Relevant precision", nr.Precision, 0)
	inDelta(t, "Not Relevant recall", nr.Recall, 0)
	inDelta(t, "Not Relevant F1", nr.F1, 0)
	if nr.Support != 1 {
		t.Errorf("Not Relevant support = %d, want 1", nr.Support)
	}

	inDelta(t, "MacroF1", s.MacroF1, (2.0/3.0)/2)
}

func TestSummarizePerfectRun(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{Label: judge.Relevant, HumanLabel: judge.Relevant, Agreement: 1.0},
		{Label: judge.NotRelevant, HumanLabel: judge.NotRelevant, Agreement: 1.0},
	}

	s := Summarize(rows)
	inDelta(t, "Accuracy", s.Accuracy, 1.0)
	inDelta(t, "MacroF1", s.MacroF1, 1.0)
	inDelta(t, "MeanAgreement", s.MeanAgreement, 1.0)
	inDelta(t, "StdDevAgreement", s.StdDevAgreement, 0)
	for _, m := range s.PerLabel {
		inDelta(t, string(m.Label)+" F1", m.F1, 1.0)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		s := Summarize(nil)
		if s.Rows != 0 || s.Scored != 0 {
			t.Errorf("Summarize(nil) = %+v", s)
		}
	})

	t.Run("no gold labels", func(t *testing.T) {
		t.Parallel()
		s := Summarize([]Row{
			{Label: judge.Relevant, Agreement: 0.5},
			{Label: judge.Relevant, Agreement: 0.7},
		})
		if s.Scored != 0 {
			t.Errorf("Scored = %d, want 0", s.Scored)
		}
		if len(s.PerLabel) != 0 {
			t.Errorf("PerLabel = %v, want empty", s.PerLabel)
		}
		inDelta(t, "MeanAgreement", s.MeanAgreement, 0.6)
	})

	t.Run("single row has zero stddev", func(t *testing.T) {
		t.Parallel()
		s := Summarize([]Row{{Label: judge.Relevant, Agreement: 0.5}})
		inDelta(t, "StdDevAgreement", s.StdDevAgreement, 0)
	})
}
