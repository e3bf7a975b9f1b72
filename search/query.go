/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package search

import (
	"encoding/json"
	"fmt"
)

// Query builds an Elasticsearch query DSL body.
type Query interface {
	// body renders the full request body including the size clause.
	body(k int) ([]byte, error)
}

// Match queries a single field with standard full-text matching.
type Match struct {
	// Field is the document field to match against.
	Field string
	// Text is the query text.
	Text string
}

func (m Match) body(k int) ([]byte, error) {
	if m.Field == "" || m.Text == "" {
		return nil, fmt.Errorf("match query requires field and text")
	}
	return json.Marshal(map[string]any{
		"size": k,
		"query": map[string]any{
			"match": map[string]any{
				m.Field: m.Text,
			},
		},
	})
}

// MultiMatch queries several fields at once, with per-field boosts
// expressed in the usual "field^boost" syntax.
type MultiMatch struct {
	// Fields lists the fields to query. Defaults to title and body,
	// with title boosted.
	Fields []string
	// Text is the query text.
	Text string
}

func (m MultiMatch) body(k int) ([]byte, error) {
	if m.Text == "" {
		return nil, fmt.Errorf("multi_match query requires text")
	}
	fields := m.Fields
	if len(fields) == 0 {
		fields = []string{"title^2", "body"}
	}
	return json.Marshal(map[string]any{
		"size": k,
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  m.Text,
				"fields": fields,
			},
		},
	})
}
