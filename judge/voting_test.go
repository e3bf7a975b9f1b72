/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMajorityVote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		labels        []Label
		wantLabel     Label
		wantAgreement float64
		wantVotes     map[Label]int
	}{{
		name:          "empty input",
		labels:        nil,
		wantLabel:     Unparsable,
		wantAgreement: 0,
		wantVotes:     map[Label]int{},
	}, {
		name:          "single sample",
		labels:        []Label{Relevant},
		wantLabel:     Relevant,
		wantAgreement: 1.0,
		wantVotes:     map[Label]int{Relevant: 1},
	}, {
		name:          "two to one majority",
		labels:        []Label{Relevant, Relevant, NotRelevant},
		wantLabel:     Relevant,
		wantAgreement: 2.0 / 3.0,
		wantVotes:     map[Label]int{Relevant: 2, NotRelevant: 1},
	}, {
		name:          "majority arrives late",
		labels:        []Label{NotRelevant, Relevant, Relevant},
		wantLabel:     Relevant,
		wantAgreement: 2.0 / 3.0,
		wantVotes:     map[Label]int{Relevant: 2, NotRelevant: 1},
	}, {
		name:          "tie breaks toward earliest seen",
		labels:        []Label{NotRelevant, Relevant, Relevant, NotRelevant},
		wantLabel:     NotRelevant,
		wantAgreement: 0.5,
		wantVotes:     map[Label]int{Relevant: 2, NotRelevant: 2},
	}, {
		name:          "unparsable counts as a vote",
		labels:        []Label{Unparsable, Unparsable, Relevant},
		wantLabel:     Unparsable,
		wantAgreement: 2.0 / 3.0,
		wantVotes:     map[Label]int{Unparsable: 2, Relevant: 1},
	}, {
		name:          "graded vocabulary",
		labels:        []Label{HighlyRelevant, PartiallyRelevant, HighlyRelevant, Irrelevant, HighlyRelevant},
		wantLabel:     HighlyRelevant,
		wantAgreement: 0.6,
		wantVotes:     map[Label]int{HighlyRelevant: 3, PartiallyRelevant: 1, Irrelevant: 1},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			label, agreement, votes := MajorityVote(tt.labels)
			if label != tt.wantLabel {
				t.Errorf("MajorityVote() label = %q, want %q", label, tt.wantLabel)
			}
			if diff := agreement - tt.wantAgreement; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("MajorityVote() agreement = %v, want %v", agreement, tt.wantAgreement)
			}
			if diff := cmp.Diff(tt.wantVotes, votes); diff != "" {
				t.Errorf("MajorityVote() votes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMajorityVoteDeterministic(t *testing.T) {
	t.Parallel()

	// Same sample sequence must always produce the same winner.
	labels := []Label{Relevant, NotRelevant, NotRelevant, Relevant}
	first, _, _ := MajorityVote(labels)
	for i := 0; i < 100; i++ {
		got, _, _ := MajorityVote(labels)
		if got != first {
			t.Fatalf("MajorityVote() = %q on iteration %d, want %q", got, i, first)
		}
	}
}
