/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package rag answers questions grounded in documents retrieved from
// Elasticsearch.
//
// A Pipeline retrieves the top-k hits for a question, binds them into a
// grounding prompt, asks a model executor for a JSON answer, and returns
// the answer text together with the snippets the model quoted and the
// source hits it was shown.
package rag
