/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"fmt"

	"github.com/leemthompo/elasticsearch-labs/evals"
)

// Summary renders a run summary as two markdown tables: overall metrics
// followed by per-label precision/recall/F1.
func Summary(name string, s evals.Summary) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "## %s\n\n", name)

	overall := createStandardTable([]string{"Metric", "Value"}, &buf)
	for _, row := range [][]string{
		{"Pairs judged", fmt.Sprintf("%d", s.Rows)},
		{"Scored against gold labels", fmt.Sprintf("%d", s.Scored)},
		{"Accuracy", fmt.Sprintf("%.3f", s.Accuracy)},
		{"Macro F1", fmt.Sprintf("%.3f", s.MacroF1)},
		{"Unparsable", fmt.Sprintf("%d", s.Unparsable)},
		{"Mean agreement", fmt.Sprintf("%.3f", s.MeanAgreement)},
		{"Agreement stddev", fmt.Sprintf("%.3f", s.StdDevAgreement)},
	} {
		_ = overall.Append(row)
	}
	_ = overall.Render()

	if len(s.PerLabel) == 0 {
		return buf.String()
	}

	buf.WriteString("\n")
	perLabel := createStandardTable([]string{"Label", "Precision", "Recall", "F1", "Support"}, &buf)
	for _, m := range s.PerLabel {
		_ = perLabel.Append([]string{
			string(m.Label),
			fmt.Sprintf("%.3f", m.Precision),
			fmt.Sprintf("%.3f", m.Recall),
			fmt.Sprintf("%.3f", m.F1),
			fmt.Sprintf("%d", m.Support),
		})
	}
	_ = perLabel.Render()

	return buf.String()
}

// Rows renders individual result rows in the order given. Raw samples are
// omitted to keep each row on one line.
func Rows(rows []evals.Row) string {
	var buf bytes.Buffer
	table := createStandardTable([]string{"Query", "Doc", "Label", "Gold", "Agreement", "Correct"}, &buf)

	for _, r := range rows {
		correct := ""
		if r.Judged() {
			correct = fmt.Sprintf("%t", r.Correct())
		}
		_ = table.Append([]string{
			r.QueryID,
			r.DocID,
			string(r.Label),
			string(r.HumanLabel),
			fmt.Sprintf("%.2f", r.Agreement),
			correct,
		})
	}
	_ = table.Render()
	return buf.String()
}
