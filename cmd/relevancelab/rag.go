/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/leemthompo/elasticsearch-labs/judge"
	"github.com/leemthompo/elasticsearch-labs/llm"
	"github.com/leemthompo/elasticsearch-labs/llm/claudexec"
	"github.com/leemthompo/elasticsearch-labs/llm/openaiexec"
	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
	"github.com/leemthompo/elasticsearch-labs/rag"
	"github.com/leemthompo/elasticsearch-labs/search"
)

// answerTokens is the completion budget for grounded answers, which are
// longer than single-label judgments.
const answerTokens = 1024

var ragTopK int

// ragConfig wires the generation backend and the Elasticsearch cluster.
type ragConfig struct {
	// Provider, Model, APIKey, and BaseURL select the generation backend,
	// sharing the judge backends.
	Provider judge.Provider `env:"LLM_PROVIDER, default=openai"`
	Model    string         `env:"LLM_MODEL"`
	APIKey   string         `env:"LLM_API_KEY"`
	BaseURL  string         `env:"LLM_BASE_URL"`

	Search search.Config
}

var ragCmd = &cobra.Command{
	Use:   "rag <question>",
	Short: "Answer a question grounded in retrieved documents",
	Long: `Retrieve the top-k documents for a question from Elasticsearch, ask the
configured model for an answer grounded in them, and print the answer with
its supporting snippets and sources.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRAG,
}

func init() {
	rootCmd.AddCommand(ragCmd)

	ragCmd.Flags().IntVarP(&ragTopK, "top-k", "k", rag.DefaultTopK, "Documents to ground the answer on")
}

func runRAG(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := strings.Join(args, " ")

	var cfg ragConfig
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}

	retriever, err := search.NewClient(cfg.Search)
	if err != nil {
		return err
	}

	pipeline, err := rag.New(retriever, answerExecutor(ctx, cfg), rag.WithTopK(ragTopK))
	if err != nil {
		return err
	}

	answer, err := pipeline.Ask(ctx, question)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", answer.Text)
	if len(answer.RelevantSnippets) > 0 {
		fmt.Println("Supporting snippets:")
		for _, s := range answer.RelevantSnippets {
			fmt.Printf("  > %s\n", s)
		}
		fmt.Println()
	}
	fmt.Println("Sources:")
	for _, hit := range answer.Sources {
		title := hit.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("  %s  %s (score %.2f)\n", hit.ID, title, hit.Score)
	}
	return nil
}

// answerExecutor builds the generation executor factory for the configured
// provider.
func answerExecutor(ctx context.Context, cfg ragConfig) func(*promptbuilder.Template) (llm.Executor[*rag.Question], error) {
	return func(tmpl *promptbuilder.Template) (llm.Executor[*rag.Question], error) {
		switch cfg.Provider {
		case judge.ProviderBedrock:
			client := anthropic.NewClient(bedrock.WithLoadDefaultConfig(ctx))
			opts := []claudexec.Option[*rag.Question]{
				claudexec.WithMaxTokens[*rag.Question](answerTokens),
			}
			if cfg.Model != "" {
				opts = append(opts, claudexec.WithModel[*rag.Question](cfg.Model))
			}
			return claudexec.New(client, tmpl, opts...)

		case judge.ProviderOpenAI, judge.ProviderPhi3:
			if cfg.Provider == judge.ProviderPhi3 && cfg.BaseURL == "" {
				return nil, fmt.Errorf("provider %q requires a base URL", cfg.Provider)
			}
			clientOpts := []option.RequestOption{}
			if cfg.APIKey != "" {
				clientOpts = append(clientOpts, option.WithAPIKey(cfg.APIKey))
			}
			if cfg.BaseURL != "" {
				clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
			}
			client := openai.NewClient(clientOpts...)
			opts := []openaiexec.Option[*rag.Question]{
				openaiexec.WithMaxTokens[*rag.Question](answerTokens),
			}
			if cfg.Model != "" {
				opts = append(opts, openaiexec.WithModel[*rag.Question](cfg.Model))
			}
			return openaiexec.New(client, tmpl, opts...)

		default:
			return nil, fmt.Errorf("unsupported provider: %q", cfg.Provider)
		}
	}
}
