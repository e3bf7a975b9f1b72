/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexec

import (
	"errors"
	"fmt"

	"github.com/leemthompo/elasticsearch-labs/llm/retry"
	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
)

// Option is a functional option for configuring the executor.
type Option[Request promptbuilder.Bindable] func(*executor[Request]) error

// WithModel overrides the model name. No prefix check is applied because
// OpenAI-compatible endpoints serve arbitrary model names (e.g.
// "phi-3-mini-4k-instruct").
func WithModel[Request promptbuilder.Bindable](model string) Option[Request] {
	return func(e *executor[Request]) error {
		if model == "" {
			return errors.New("model name cannot be empty")
		}
		e.modelName = model
		return nil
	}
}

// WithMaxTokens sets the maximum completion tokens.
func WithMaxTokens[Request promptbuilder.Bindable](tokens int64) Option[Request] {
	return func(e *executor[Request]) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		e.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the sampling temperature. The chat-completions API
// accepts 0.0 to 2.0.
func WithTemperature[Request promptbuilder.Bindable](temp float64) Option[Request] {
	return func(e *executor[Request]) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		e.temperature = temp
		return nil
	}
}

// WithSystemPrompt sets a system instruction template.
func WithSystemPrompt[Request promptbuilder.Bindable](tmpl *promptbuilder.Template) Option[Request] {
	return func(e *executor[Request]) error {
		if tmpl == nil {
			return errors.New("system prompt template cannot be nil")
		}
		e.system = tmpl
		return nil
	}
}

// WithRetryConfig sets the retry configuration for transient API errors.
func WithRetryConfig[Request promptbuilder.Bindable](cfg retry.Config) Option[Request] {
	return func(e *executor[Request]) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.retryConfig = cfg
		return nil
	}
}
