/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package store persists evaluation result rows in DuckDB so runs can be
// compared after the fact. The store is in-memory unless a database path
// is configured, in which case rows accumulate across runs in one file.
package store
