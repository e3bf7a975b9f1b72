/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"

	"github.com/leemthompo/elasticsearch-labs/llm"
	"github.com/leemthompo/elasticsearch-labs/llm/claudexec"
)

// newClaude creates a judge backed by Claude on Amazon Bedrock. Requests are
// signed with the ambient AWS credentials (environment, shared config, or
// instance role).
func newClaude(ctx context.Context, model string, temperature float64, opts ...claudexec.Option[*Request]) (Interface, error) {
	client := anthropic.NewClient(
		bedrock.WithLoadDefaultConfig(ctx),
	)

	return newJudger(func(t Task) (llm.Executor[*Request], error) {
		taskOpts := []claudexec.Option[*Request]{
			claudexec.WithMaxTokens[*Request](t.MaxTokens),
			claudexec.WithTemperature[*Request](temperature),
		}
		if model != "" {
			taskOpts = append(taskOpts, claudexec.WithModel[*Request](model))
		}
		taskOpts = append(taskOpts, opts...)

		return claudexec.New(client, t.Template, taskOpts...)
	})
}
