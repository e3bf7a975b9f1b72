/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/leemthompo/elasticsearch-labs/llm"
	"github.com/leemthompo/elasticsearch-labs/llm/openaiexec"
)

// newOpenAI creates a judge backed by the OpenAI chat-completions API.
// A non-empty baseURL points the client at an OpenAI-compatible endpoint,
// which is how Phi-3 deployments are reached.
func newOpenAI(apiKey, baseURL, model string, temperature float64, opts ...openaiexec.Option[*Request]) (Interface, error) {
	clientOpts := []option.RequestOption{}
	if apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(clientOpts...)

	return newJudger(func(t Task) (llm.Executor[*Request], error) {
		taskOpts := []openaiexec.Option[*Request]{
			openaiexec.WithMaxTokens[*Request](t.MaxTokens),
			openaiexec.WithTemperature[*Request](temperature),
		}
		if model != "" {
			taskOpts = append(taskOpts, openaiexec.WithModel[*Request](model))
		}
		taskOpts = append(taskOpts, opts...)

		return openaiexec.New(client, t.Template, taskOpts...)
	})
}
