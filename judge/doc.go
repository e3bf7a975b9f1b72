/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package judge provides LLM-based relevance judgment of query-document
// pairs using closed label vocabularies and majority voting.
//
// # Overview
//
// The judge package provides:
//   - A common Interface over different LLM providers
//   - Support for Anthropic Claude (via Amazon Bedrock), OpenAI, and
//     OpenAI-compatible endpoints such as a self-hosted Phi-3 deployment
//   - A static task registry pairing a prompt template with the label
//     vocabulary and token budget it expects
//   - Majority voting over repeated sampled generations, with the vote
//     fraction reported as an agreement score
//
// # Usage
//
//	j, err := judge.New(ctx, judge.Config{
//		Provider:    judge.ProviderOpenAI,
//		APIKey:      os.Getenv("OPENAI_API_KEY"),
//		Temperature: 0.7,
//	})
//	if err != nil {
//		return err
//	}
//
//	verdict, err := j.Judge(ctx, &judge.Request{
//		Task:    judge.TaskRelevance,
//		QueryID: "q1",
//		Query:   "how do I tune BM25 parameters",
//		DocID:   "d9",
//		Body:    docText,
//		Samples: 5,
//	})
//
// # Labels
//
// Every task answers from a closed vocabulary. Output that matches no
// vocabulary term is recorded as the Unparsable sentinel rather than
// dropped, so it still participates in voting and shows up in agreement.
//
// # Thread Safety
//
// Judges are stateless after construction and safe for concurrent use.
package judge
