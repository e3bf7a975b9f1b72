/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/leemthompo/elasticsearch-labs/judge"
)

// LabelMetrics holds the classification metrics for one label.
type LabelMetrics struct {
	// Label is the gold label the metrics score.
	Label judge.Label `json:"label"`

	// Precision is TP / (TP + FP). Zero when the label was never predicted.
	Precision float64 `json:"precision"`

	// Recall is TP / (TP + FN). Zero when the label has no gold rows.
	Recall float64 `json:"recall"`

	// F1 is the harmonic mean of precision and recall.
	F1 float64 `json:"f1"`

	// Support is how many gold rows carry this label.
	Support int `json:"support"`
}

// Summary aggregates an evaluation run's rows into quality metrics.
type Summary struct {
	// Rows is the total number of judged pairs in the run.
	Rows int `json:"rows"`

	// Scored is how many rows had a gold label to score against.
	Scored int `json:"scored"`

	// Correct is how many scored rows matched their gold label.
	Correct int `json:"correct"`

	// Accuracy is Correct / Scored.
	Accuracy float64 `json:"accuracy"`

	// MacroF1 is the unweighted mean F1 over labels with support.
	MacroF1 float64 `json:"macro_f1"`

	// PerLabel holds the per-label metrics, sorted by label.
	PerLabel []LabelMetrics `json:"per_label"`

	// Unparsable is how many rows won the Unparsable sentinel.
	Unparsable int `json:"unparsable"`

	// MeanAgreement and StdDevAgreement describe the agreement
	// distribution over all rows.
	MeanAgreement   float64 `json:"mean_agreement"`
	StdDevAgreement float64 `json:"stddev_agreement"`
}

// Summarize computes classification and agreement metrics over rows.
// Precision, recall, F1, and accuracy consider only rows with a gold
// label; agreement statistics cover every row.
func Summarize(rows []Row) Summary {
	s := Summary{Rows: len(rows)}
	if len(rows) == 0 {
		return s
	}

	agreements := make([]float64, 0, len(rows))
	tp := map[judge.Label]int{}
	fp := map[judge.Label]int{}
	fn := map[judge.Label]int{}
	support := map[judge.Label]int{}

	for _, row := range rows {
		agreements = append(agreements, row.Agreement)
		if row.Label == judge.Unparsable {
			s.Unparsable++
		}
		if !row.Judged() {
			continue
		}
		s.Scored++
		support[row.HumanLabel]++
		if row.Correct() {
			s.Correct++
			tp[row.Label]++
		} else {
			fp[row.Label]++
			fn[row.HumanLabel]++
		}
	}

	s.MeanAgreement = stat.Mean(agreements, nil)
	s.StdDevAgreement = stat.StdDev(agreements, nil)
	if len(agreements) < 2 {
		s.StdDevAgreement = 0
	}

	if s.Scored == 0 {
		return s
	}
	s.Accuracy = float64(s.Correct) / float64(s.Scored)

	labels := make([]judge.Label, 0, len(support))
	for l := range support {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	f1s := make([]float64, 0, len(labels))
	for _, l := range labels {
		m := LabelMetrics{Label: l, Support: support[l]}
		if predicted := tp[l] + fp[l]; predicted > 0 {
			m.Precision = float64(tp[l]) / float64(predicted)
		}
		if gold := tp[l] + fn[l]; gold > 0 {
			m.Recall = float64(tp[l]) / float64(gold)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		f1s = append(f1s, m.F1)
		s.PerLabel = append(s.PerLabel, m)
	}
	s.MacroF1 = stat.Mean(f1s, nil)

	return s
}
