/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package claudexec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leemthompo/elasticsearch-labs/llm/retry"
	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
)

// Option is a functional option for configuring the executor.
type Option[Request promptbuilder.Bindable] func(*executor[Request]) error

// WithModel overrides the Bedrock model identifier.
func WithModel[Request promptbuilder.Bindable](model string) Option[Request] {
	return func(e *executor[Request]) error {
		if !strings.Contains(model, "claude") {
			return fmt.Errorf("model %q does not appear to be a Claude model", model)
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

// WithTemperature sets the sampling temperature. Claude models accept
// values from 0.0 (deterministic) to 1.0 (most random); majority voting
// needs a non-zero temperature to get sample diversity.
func WithTemperature[Request promptbuilder.Bindable](temp float64) Option[Request] {
	return func(e *executor[Request]) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
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

// WithRetryConfig sets the retry configuration for transient API errors,
// particularly 429 rate limit and 529 overloaded responses.
func WithRetryConfig[Request promptbuilder.Bindable](cfg retry.Config) Option[Request] {
	return func(e *executor[Request]) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.retryConfig = cfg
		return nil
	}
}
