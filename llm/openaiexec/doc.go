/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaiexec implements llm.Executor over the OpenAI
// chat-completions API.
//
// The same executor serves two model families: hosted OpenAI models, and
// Phi-3 behind any OpenAI-compatible endpoint, selected by overriding the
// client base URL:
//
//	// Hosted OpenAI
//	client := openai.NewClient(option.WithAPIKey(key))
//
//	// Phi-3 on a local OpenAI-compatible server
//	client := openai.NewClient(
//	    option.WithBaseURL("http://localhost:8000/v1"),
//	    option.WithAPIKey("unused"),
//	)
//
//	exec, err := openaiexec.New[*judge.Request](
//	    client,
//	    tmpl,
//	    openaiexec.WithModel[*judge.Request]("phi-3-mini-4k-instruct"),
//	)
//
// Unlike the Bedrock messages API, chat completions support server-side
// sampling: GenerateN sets the n parameter and gets all samples from one
// request.
package openaiexec
