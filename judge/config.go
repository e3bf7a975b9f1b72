/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"
)

// Provider selects which model backend serves judgments.
type Provider string

const (
	// ProviderBedrock is Anthropic Claude via Amazon Bedrock.
	ProviderBedrock Provider = "bedrock"
	// ProviderOpenAI is the OpenAI API.
	ProviderOpenAI Provider = "openai"
	// ProviderPhi3 is Phi-3 behind an OpenAI-compatible endpoint.
	ProviderPhi3 Provider = "phi3"
)

// Config selects and configures a judge backend.
type Config struct {
	// Provider picks the backend.
	Provider Provider `env:"JUDGE_PROVIDER, default=openai"`

	// Model overrides the backend's default model name.
	Model string `env:"JUDGE_MODEL"`

	// Temperature is the sampling temperature. Majority voting needs a
	// non-zero value for sample diversity.
	Temperature float64 `env:"JUDGE_TEMPERATURE, default=0.7"`

	// APIKey authenticates OpenAI-style backends. Bedrock uses ambient
	// AWS credentials instead.
	APIKey string `env:"JUDGE_API_KEY"`

	// BaseURL points phi3 (or any OpenAI-compatible) deployments at
	// their serving endpoint.
	BaseURL string `env:"JUDGE_BASE_URL"`
}

// New creates a judge for the configured provider.
func New(ctx context.Context, cfg Config) (Interface, error) {
	switch cfg.Provider {
	case ProviderBedrock:
		return newClaude(ctx, cfg.Model, cfg.Temperature)

	case ProviderOpenAI:
		return newOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)

	case ProviderPhi3:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("provider %q requires a base URL", cfg.Provider)
		}
		return newOpenAI(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)

	default:
		return nil, fmt.Errorf("unsupported provider: %q", cfg.Provider)
	}
}
