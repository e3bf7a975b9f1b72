/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package extract

import (
	"encoding/json"
	"strings"
)

// JSON extracts JSON content from model output that may wrap it in markdown
// code fences. Content between a ```json line and its closing ``` wins;
// otherwise the trimmed text is returned with any stray fences stripped.
func JSON(text string) string {
	if body, ok := fencedBlock(text); ok {
		return body
	}

	text = strings.TrimSpace(text)

	// Models sometimes emit a single inline fenced blob without newlines.
	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	// These are no-ops when the fences aren't there.
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// fencedBlock returns the content of the first ```json ... ``` block whose
// markers sit on their own lines.
func fencedBlock(text string) (string, bool) {
	var body strings.Builder
	inBlock := false
	found := false

	for _, line := range strings.Split(text, "\n") {
		if !inBlock && line == "```json" {
			inBlock = true
			found = true
			continue
		}
		if inBlock && line == "```" {
			break
		}
		if inBlock {
			if body.Len() > 0 {
				body.WriteString("\n")
			}
			body.WriteString(line)
		}
	}

	if !found {
		return "", false
	}
	return strings.TrimSpace(body.String()), true
}

// Typed extracts JSON content from model output and unmarshals it into T.
func Typed[T any](text string) (T, error) {
	var result T
	if err := json.Unmarshal([]byte(JSON(text)), &result); err != nil {
		return result, err
	}
	return result, nil
}
