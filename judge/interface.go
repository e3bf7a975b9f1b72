/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"
	"strings"
)

// Label is a relevance judgment from a task's closed vocabulary.
type Label string

const (
	// Relevant and NotRelevant form the binary relevance vocabulary.
	Relevant    Label = "Relevant"
	NotRelevant Label = "Not Relevant"

	// Graded relevance vocabulary, from least to most relevant.
	Irrelevant        Label = "Irrelevant"
	PartiallyRelevant Label = "Partially Relevant"
	HighlyRelevant    Label = "Highly Relevant"

	// Unparsable is the sentinel for output that matched no vocabulary term.
	Unparsable Label = "Unparsable"
)

// Request describes one query-document pair to judge.
type Request struct {
	// Task names the judgment task in the registry.
	Task string `json:"task"`

	// QueryID identifies the query within its dataset.
	QueryID string `json:"query_id"`

	// Query is the search query text.
	Query string `json:"query"`

	// DocID identifies the candidate document.
	DocID string `json:"doc_id"`

	// Title is the candidate document title. May be empty.
	Title string `json:"title,omitempty"`

	// Body is the candidate document text.
	Body string `json:"body"`

	// Metadata carries optional descriptive fields shown to the model.
	Metadata map[string]string `json:"metadata,omitempty"`

	// Samples is how many generations to vote over. Zero means one.
	Samples int `json:"samples,omitempty"`
}

// Validate checks the field-presence requirements before any prompt is
// formatted.
func (r *Request) Validate() error {
	if r.Task == "" {
		return fmt.Errorf("task is required")
	}
	if r.Query == "" {
		return fmt.Errorf("query is required")
	}
	if r.Body == "" {
		return fmt.Errorf("document body is required")
	}
	if r.Samples < 0 {
		return fmt.Errorf("samples cannot be negative, got %d", r.Samples)
	}
	return nil
}

// sampleCount normalizes the requested sample count.
func (r *Request) sampleCount() int {
	if r.Samples < 1 {
		return 1
	}
	return r.Samples
}

// Verdict is the judgment for one query-document pair.
type Verdict struct {
	// Task is the task the verdict was produced under.
	Task string `json:"task"`

	// Label is the winning label, or Unparsable.
	Label Label `json:"label"`

	// Agreement is the winning label's vote fraction, 1.0 for a single
	// sample. It serves as a confidence proxy under majority voting.
	Agreement float64 `json:"agreement"`

	// Votes maps each observed label to its count.
	Votes map[Label]int `json:"votes"`

	// RawSamples holds the raw model output per sample, in sample order.
	RawSamples []string `json:"raw_samples"`

	// Model is the model that produced the samples.
	Model string `json:"model"`
}

// String returns a one-line human-readable form of the verdict.
func (v *Verdict) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%.2f agreement", v.Label, v.Agreement)
	if n := len(v.RawSamples); n > 1 {
		fmt.Fprintf(&sb, " over %d samples", n)
	}
	sb.WriteString(")")
	return sb.String()
}

// Interface is the contract for judge implementations.
type Interface interface {
	// Judge evaluates a query-document pair and returns a verdict.
	Judge(ctx context.Context, request *Request) (*Verdict, error)
}
