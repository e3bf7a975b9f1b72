/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package claudexec implements llm.Executor for Anthropic Claude models
// reached through Amazon Bedrock.
//
// The executor handles prompt rendering from templates, message streaming
// and accumulation, token-usage metrics, and retry with backoff for rate
// limit and overloaded responses.
//
// # Basic usage
//
// Create an executor with a Bedrock-authenticated client and a prompt
// template:
//
//	client := anthropic.NewClient(
//	    bedrock.WithLoadDefaultConfig(ctx),
//	)
//
//	exec, err := claudexec.New[*judge.Request](
//	    client,
//	    tmpl,
//	    claudexec.WithModel[*judge.Request]("anthropic.claude-3-5-haiku-20241022-v1:0"),
//	    claudexec.WithTemperature[*judge.Request](0.7),
//	)
//	if err != nil {
//	    return nil, err
//	}
//
//	samples, err := exec.GenerateN(ctx, request, 5)
//
// # Options
//
//   - WithModel: override the Bedrock model ID
//   - WithMaxTokens: maximum completion tokens (defaults to 1024)
//   - WithTemperature: sampling temperature (defaults to 0.1)
//   - WithSystemPrompt: system instruction template
//   - WithRetryConfig: backoff behavior for transient API errors
//
// The Bedrock messages API yields one candidate per call, so GenerateN
// issues n sequential calls; sample diversity comes from the temperature.
package claudexec
