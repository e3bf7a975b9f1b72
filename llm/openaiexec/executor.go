/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexec

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"

	"github.com/leemthompo/elasticsearch-labs/llm"
	"github.com/leemthompo/elasticsearch-labs/llm/genaimetrics"
	"github.com/leemthompo/elasticsearch-labs/llm/retry"
	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
)

// executor is the private implementation of llm.Executor for models served
// over the OpenAI chat-completions API. This covers both hosted OpenAI
// models and Phi-3 behind an OpenAI-compatible endpoint.
type executor[Request promptbuilder.Bindable] struct {
	client      openai.Client
	modelName   string
	system      *promptbuilder.Template
	tmpl        *promptbuilder.Template
	maxTokens   int64
	temperature float64
	metrics     *genaimetrics.GenAI
	retryConfig retry.Config
}

// New creates an OpenAI-compatible executor for the given prompt template.
func New[Request promptbuilder.Bindable](
	client openai.Client,
	tmpl *promptbuilder.Template,
	opts ...Option[Request],
) (llm.Executor[Request], error) {
	if tmpl == nil {
		return nil, errors.New("prompt template cannot be nil")
	}

	e := &executor[Request]{
		client:      client,
		modelName:   "gpt-4o-mini",
		tmpl:        tmpl,
		maxTokens:   1024,
		temperature: 0.1,
		metrics:     genaimetrics.New("elasticsearch.labs.llm"),
		retryConfig: retry.DefaultConfig(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return e, nil
}

// Generate implements llm.Executor.
func (e *executor[Request]) Generate(ctx context.Context, request Request) (llm.Completion, error) {
	samples, err := e.GenerateN(ctx, request, 1)
	if err != nil {
		return llm.Completion{}, err
	}
	return samples[0], nil
}

// GenerateN implements llm.Executor. The chat-completions API supports
// server-side sampling via the n parameter, so one request yields all
// samples.
func (e *executor[Request]) GenerateN(ctx context.Context, request Request, n int) ([]llm.Completion, error) {
	log := clog.FromContext(ctx)

	if n < 1 {
		return nil, fmt.Errorf("sample count must be positive, got %d", n)
	}

	prompt, err := e.buildPrompt(request)
	if err != nil {
		return nil, err
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if e.system != nil {
		systemPrompt, err := e.system.Render()
		if err != nil {
			return nil, fmt.Errorf("rendering system prompt: %w", err)
		}
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(e.modelName),
		Messages:    messages,
		MaxTokens:   openai.Int(e.maxTokens),
		Temperature: openai.Float(e.temperature),
	}
	if n > 1 {
		params.N = openai.Int(int64(n))
	}

	log.With("model", e.modelName).
		With("prompt_length", len(prompt)).
		With("samples", n).
		Info("Starting chat completion")

	resp, err := retry.Do(ctx, e.retryConfig, "chat_completion", isRetryableOpenAIError, func() (*openai.ChatCompletion, error) {
		return e.client.Chat.Completions.New(ctx, params)
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	e.metrics.RecordTokens(ctx, e.modelName, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	e.metrics.RecordSamples(ctx, e.modelName, int64(len(resp.Choices)))

	// Usage is reported per request, not per choice; attribute it to the
	// first sample so totals stay correct when summing rows.
	completions := make([]llm.Completion, 0, len(resp.Choices))
	for i, choice := range resp.Choices {
		if choice.Message.Content == "" {
			return nil, fmt.Errorf("choice %d has no content", i)
		}
		c := llm.Completion{Text: choice.Message.Content}
		if i == 0 {
			c.PromptTokens = resp.Usage.PromptTokens
			c.CompletionTokens = resp.Usage.CompletionTokens
		}
		completions = append(completions, c)
	}

	return completions, nil
}

// Model implements llm.Executor.
func (e *executor[Request]) Model() string {
	return e.modelName
}

// buildPrompt binds the request to the template and renders the final text.
func (e *executor[Request]) buildPrompt(request Request) (string, error) {
	bound, err := request.Bind(e.tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Render()
	if err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return prompt, nil
}
