/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

// Package extract turns free-text model output into structured values.
//
// Two extraction modes are provided: JSON extraction for responses that
// carry a (possibly fenced) JSON payload, and regex-based label extraction
// for responses expected to contain one term from a closed vocabulary.
// Output that matches neither is the caller's "unparsable" case; this
// package never guesses.
package extract
