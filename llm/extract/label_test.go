/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabelMatcherErrors(t *testing.T) {
	_, err := NewLabelMatcher(nil)
	assert.Error(t, err)

	_, err = NewLabelMatcher([]string{"Relevant", "  "})
	assert.Error(t, err)
}

func TestLabelMatcherExtract(t *testing.T) {
	m, err := NewLabelMatcher([]string{"Relevant", "Not Relevant"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		text  string
		want  string
		match bool
	}{{
		name:  "exact",
		text:  "Relevant",
		want:  "Relevant",
		match: true,
	}, {
		name:  "negation_wins_over_substring",
		text:  "The document is Not Relevant to the query.",
		want:  "Not Relevant",
		match: true,
	}, {
		name:  "case_insensitive",
		text:  "verdict: NOT RELEVANT",
		want:  "Not Relevant",
		match: true,
	}, {
		name:  "whitespace_run",
		text:  "Answer: not\n relevant",
		want:  "Not Relevant",
		match: true,
	}, {
		name:  "embedded_in_prose",
		text:  "After careful review I deem this passage relevant overall.",
		want:  "Relevant",
		match: true,
	}, {
		name:  "word_boundary_respected",
		text:  "irrelevant chatter only",
		match: false,
	}, {
		name:  "no_match",
		text:  "I cannot answer that.",
		match: false,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Extract(tt.text)
			assert.Equal(t, tt.match, ok)
			if tt.match {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLabelMatcherGradedVocabulary(t *testing.T) {
	m, err := NewLabelMatcher([]string{"Irrelevant", "Partially Relevant", "Relevant", "Highly Relevant"})
	require.NoError(t, err)

	got, ok := m.Extract("I would rate this as highly relevant given the overlap.")
	require.True(t, ok)
	assert.Equal(t, "Highly Relevant", got)

	got, ok = m.Extract("Mostly irrelevant to the question asked.")
	require.True(t, ok)
	assert.Equal(t, "Irrelevant", got)
}
