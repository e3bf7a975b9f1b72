/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package search provides a small Elasticsearch retrieval client for
// fetching candidate documents to judge or to ground RAG answers on.
//
// It wraps the low-level go-elasticsearch client with typed hit records
// and query builders for the two query shapes the toolkit uses: a
// single-field match query and a multi_match query over title and body.
package search
