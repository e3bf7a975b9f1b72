/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders evaluation summaries and result rows as
// markdown-style tables suitable for terminals and CI logs.
package report
