/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package llm defines the executor contract shared by all model backends.
//
// An Executor owns one prompt template and one decoding configuration and
// turns Bindable requests into raw text completions. Concrete backends live
// in the claudexec and openaiexec subpackages; callers pick one and program
// against this interface.
package llm

import (
	"context"

	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
)

// Completion is one sampled generation together with its token accounting.
type Completion struct {
	// Text is the raw model output.
	Text string
	// PromptTokens is the number of input tokens billed for this sample.
	PromptTokens int64
	// CompletionTokens is the number of output tokens billed for this sample.
	CompletionTokens int64
}

// Executor runs prompt-templated generation against one model backend.
type Executor[Request promptbuilder.Bindable] interface {
	// Generate produces a single completion for the request.
	Generate(ctx context.Context, request Request) (Completion, error)

	// GenerateN produces n sampled completions for the request. Backends
	// that support server-side sampling use it; others issue n calls.
	GenerateN(ctx context.Context, request Request, n int) ([]Completion, error)

	// Model reports the configured model name, used as a metrics dimension
	// and in result rows.
	Model() string
}
