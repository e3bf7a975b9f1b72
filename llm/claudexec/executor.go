/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package claudexec

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"

	"github.com/leemthompo/elasticsearch-labs/llm"
	"github.com/leemthompo/elasticsearch-labs/llm/genaimetrics"
	"github.com/leemthompo/elasticsearch-labs/llm/retry"
	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
)

// executor is the private implementation of llm.Executor for Claude models
// reached through Amazon Bedrock.
type executor[Request promptbuilder.Bindable] struct {
	client      anthropic.Client
	modelName   string
	system      *promptbuilder.Template
	tmpl        *promptbuilder.Template
	maxTokens   int64
	temperature float64
	metrics     *genaimetrics.GenAI
	retryConfig retry.Config
}

// New creates a Claude executor for the given prompt template. The client
// should be constructed with bedrock.WithLoadDefaultConfig so requests are
// signed with the ambient AWS credentials.
func New[Request promptbuilder.Bindable](
	client anthropic.Client,
	tmpl *promptbuilder.Template,
	opts ...Option[Request],
) (llm.Executor[Request], error) {
	if tmpl == nil {
		return nil, errors.New("prompt template cannot be nil")
	}

	e := &executor[Request]{
		client:      client,
		modelName:   "anthropic.claude-3-5-sonnet-20241022-v2:0",
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

// GenerateN implements llm.Executor. The Bedrock messages API returns a
// single candidate per call, so sampling issues n sequential calls with the
// configured temperature.
func (e *executor[Request]) GenerateN(ctx context.Context, request Request, n int) ([]llm.Completion, error) {
	log := clog.FromContext(ctx)

	if n < 1 {
		return nil, fmt.Errorf("sample count must be positive, got %d", n)
	}

	prompt, err := e.buildPrompt(request)
	if err != nil {
		return nil, err
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.modelName),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(prompt),
			},
		}},
	}
	params.Temperature = anthropic.Float(e.temperature)

	if e.system != nil {
		systemPrompt, err := e.system.Render()
		if err != nil {
			return nil, fmt.Errorf("rendering system prompt: %w", err)
		}
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	log.With("model", e.modelName).
		With("prompt_length", len(prompt)).
		With("samples", n).
		Info("Starting Claude generation")

	completions := make([]llm.Completion, 0, n)
	for i := 0; i < n; i++ {
		message, err := retry.Do(ctx, e.retryConfig, "stream_message", isRetryableClaudeError, func() (anthropic.Message, error) {
			stream := e.client.Messages.NewStreaming(ctx, params)
			var msg anthropic.Message
			for stream.Next() {
				event := stream.Current()
				if err := msg.Accumulate(event); err != nil {
					return msg, fmt.Errorf("failed to accumulate event: %w", err)
				}
			}
			if err := stream.Err(); err != nil {
				return msg, err
			}
			return msg, nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to stream Claude response: %w", err)
		}

		if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
			e.metrics.RecordTokens(ctx, e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
		}

		var text string
		for _, content := range message.Content {
			if content.Type == "text" {
				text = content.Text
			}
		}
		if text == "" {
			return nil, errors.New("no text content in Claude's response")
		}

		completions = append(completions, llm.Completion{
			Text:             text,
			PromptTokens:     message.Usage.InputTokens,
			CompletionTokens: message.Usage.OutputTokens,
		})
	}

	e.metrics.RecordSamples(ctx, e.modelName, int64(n))
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
