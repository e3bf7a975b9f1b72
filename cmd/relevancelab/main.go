/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements relevancelab, a CLI for LLM-based relevance
// judgment and retrieval-augmented generation against Elasticsearch.
package main

func main() {
	Execute()
}
