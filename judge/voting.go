/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

// MajorityVote selects the plurality label from sampled judgments and
// returns it with its vote fraction and the full vote counts. Ties break
// toward the label seen earliest in sample order, which keeps the result
// deterministic for a fixed sample sequence.
func MajorityVote(labels []Label) (Label, float64, map[Label]int) {
	if len(labels) == 0 {
		return Unparsable, 0, map[Label]int{}
	}

	votes := make(map[Label]int, len(labels))
	var order []Label
	for _, l := range labels {
		if _, seen := votes[l]; !seen {
			order = append(order, l)
		}
		votes[l]++
	}

	winner := order[0]
	for _, l := range order[1:] {
		if votes[l] > votes[winner] {
			winner = l
		}
	}

	return winner, float64(votes[winner]) / float64(len(labels)), votes
}
