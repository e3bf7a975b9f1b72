/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leemthompo/elasticsearch-labs/judge"
)

// Pair is one labeled query-document pair from a dataset.
type Pair struct {
	// QueryID identifies the query within the dataset.
	QueryID string `json:"query_id" yaml:"query_id"`

	// Query is the search query text.
	Query string `json:"query" yaml:"query"`

	// DocID identifies the candidate document.
	DocID string `json:"doc_id" yaml:"doc_id"`

	// Title is the candidate document title. May be empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Body is the candidate document text.
	Body string `json:"body" yaml:"body"`

	// Metadata carries optional descriptive fields shown to the model.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// HumanLabel is the gold judgment when the dataset has one.
	HumanLabel judge.Label `json:"human_label,omitempty" yaml:"human_label,omitempty"`
}

// Validate checks the field-presence requirements for judging this pair.
func (p *Pair) Validate() error {
	if p.QueryID == "" {
		return fmt.Errorf("query_id is required")
	}
	if p.Query == "" {
		return fmt.Errorf("query is required")
	}
	if p.DocID == "" {
		return fmt.Errorf("doc_id is required")
	}
	if p.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

// Request converts the pair into a judge request for the given task.
func (p *Pair) Request(task string, samples int) *judge.Request {
	return &judge.Request{
		Task:     task,
		QueryID:  p.QueryID,
		Query:    p.Query,
		DocID:    p.DocID,
		Title:    p.Title,
		Body:     p.Body,
		Metadata: p.Metadata,
		Samples:  samples,
	}
}

// Dataset is a named collection of pairs to judge.
type Dataset struct {
	// Name labels the dataset in reports. Defaults to the file name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Pairs are the query-document pairs.
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// LoadDataset reads a dataset file, JSON or YAML by extension, and
// validates every pair in it.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var ds Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .json, .yaml, or .yml)", ext)
	}

	if len(ds.Pairs) == 0 {
		return nil, fmt.Errorf("dataset %s has no pairs", path)
	}
	for i := range ds.Pairs {
		if err := ds.Pairs[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid pair %d in %s: %w", i, path, err)
		}
	}

	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &ds, nil
}

// Row is one judged pair: the verdict joined with the gold label.
type Row struct {
	// RunID groups the rows of one evaluation run.
	RunID string `json:"run_id"`

	// Task is the judgment task the row was produced under.
	Task string `json:"task"`

	QueryID string `json:"query_id"`
	Query   string `json:"query"`
	DocID   string `json:"doc_id"`

	// Label is the model's winning label, or Unparsable.
	Label judge.Label `json:"label"`

	// HumanLabel is the gold judgment, empty when the dataset has none.
	HumanLabel judge.Label `json:"human_label,omitempty"`

	// Agreement is the winning label's vote fraction.
	Agreement float64 `json:"agreement"`

	// RawSamples holds the raw model output per sample.
	RawSamples []string `json:"raw_samples,omitempty"`

	// Model is the model that produced the samples.
	Model string `json:"model"`
}

// Judged reports whether the row can be scored against a gold label.
func (r Row) Judged() bool {
	return r.HumanLabel != ""
}

// Correct reports whether the model label matches the gold label. Only
// meaningful when Judged.
func (r Row) Correct() bool {
	return r.Judged() && r.Label == r.HumanLabel
}
