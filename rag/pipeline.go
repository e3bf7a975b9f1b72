/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package rag

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"github.com/leemthompo/elasticsearch-labs/llm"
	"github.com/leemthompo/elasticsearch-labs/llm/extract"
	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
	"github.com/leemthompo/elasticsearch-labs/search"
)

// DefaultTopK is how many hits ground an answer when the caller does not
// say otherwise.
const DefaultTopK = 5

// groundedPrompt instructs the model to answer only from the retrieved
// passages and to reply as JSON so the answer can be parsed.
var groundedPrompt = promptbuilder.MustNew(`<task>
Answer the question using only the provided passages. If the passages do
not contain the answer, say so in the answer text rather than guessing.
</task>

<question>
{{question}}
</question>

<passages>
{{passages}}
</passages>

<instructions>
Respond with a JSON object in a fenced code block:

` + "```json" + `
{
  "text": "the answer",
  "relevant_snippets": ["verbatim quotes from the passages that support the answer"]
}
` + "```" + `
</instructions>`)

// Question is one user question bound into the grounding prompt together
// with its retrieved passages.
type Question struct {
	Text string
	hits []search.Hit
}

// passage is the view of a hit the model sees.
type passage struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

// Bind implements promptbuilder.Bindable.
func (q *Question) Bind(tmpl *promptbuilder.Template) (*promptbuilder.Template, error) {
	tmpl, err := tmpl.Bind("question", q.Text)
	if err != nil {
		return nil, err
	}
	passages := make([]passage, 0, len(q.hits))
	for _, h := range q.hits {
		passages = append(passages, passage{ID: h.ID, Title: h.Title, Body: h.Body})
	}
	return tmpl.BindJSON("passages", passages)
}

// modelAnswer is the JSON shape the model is asked to produce.
type modelAnswer struct {
	Text             string   `json:"text"`
	RelevantSnippets []string `json:"relevant_snippets"`
}

// Answer is a grounded answer with its supporting evidence.
type Answer struct {
	// Text is the answer itself.
	Text string `json:"text"`

	// RelevantSnippets are the passage quotes the model cited.
	RelevantSnippets []string `json:"relevant_snippets"`

	// Sources are the hits the answer was grounded on, in score order.
	Sources []search.Hit `json:"sources"`

	// Model is the model that produced the answer.
	Model string `json:"model"`
}

// Retriever is the slice of the search client the pipeline needs.
type Retriever interface {
	Search(ctx context.Context, query search.Query, k int) ([]search.Hit, error)
}

// Pipeline retrieves, grounds, and generates.
type Pipeline struct {
	retriever Retriever
	exec      llm.Executor[*Question]
	topK      int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTopK sets how many hits ground each answer.
func WithTopK(k int) Option {
	return func(p *Pipeline) {
		p.topK = k
	}
}

// New builds a pipeline from a retriever and an executor factory. The
// factory receives the grounding prompt template so any provider's
// executor constructor can be passed directly.
func New(retriever Retriever, build func(tmpl *promptbuilder.Template) (llm.Executor[*Question], error), opts ...Option) (*Pipeline, error) {
	if retriever == nil {
		return nil, fmt.Errorf("retriever is required")
	}
	exec, err := build(groundedPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to create executor: %w", err)
	}

	p := &Pipeline{
		retriever: retriever,
		exec:      exec,
		topK:      DefaultTopK,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.topK <= 0 {
		return nil, fmt.Errorf("top-k must be positive, got %d", p.topK)
	}
	return p, nil
}

// Ask answers one question grounded in retrieved passages.
func (p *Pipeline) Ask(ctx context.Context, question string) (*Answer, error) {
	log := clog.FromContext(ctx)

	if question == "" {
		return nil, fmt.Errorf("question is required")
	}

	hits, err := p.retriever.Search(ctx, search.MultiMatch{Text: question}, p.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %w", err)
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("no passages found for question")
	}

	completion, err := p.exec.Generate(ctx, &Question{Text: question, hits: hits})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	parsed, err := extract.Typed[modelAnswer](completion.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model answer: %w", err)
	}

	log.With("hits", len(hits)).
		With("snippets", len(parsed.RelevantSnippets)).
		Info("Answered question")

	return &Answer{
		Text:             parsed.Text,
		RelevantSnippets: parsed.RelevantSnippets,
		Sources:          hits,
		Model:            p.exec.Model(),
	}, nil
}
