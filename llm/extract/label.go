/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package extract

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// LabelMatcher classifies free-text model output into a closed label
// vocabulary using a single case-insensitive regular expression.
type LabelMatcher struct {
	re        *regexp.Regexp
	canonical map[string]string
}

// NewLabelMatcher compiles a matcher for the given vocabulary. Longer labels
// are tried first so that "Not Relevant" wins over its substring "Relevant",
// and whitespace inside a label matches any run of whitespace in the output.
func NewLabelMatcher(vocab []string) (*LabelMatcher, error) {
	if len(vocab) == 0 {
		return nil, errors.New("label vocabulary cannot be empty")
	}

	sorted := make([]string, len(vocab))
	copy(sorted, vocab)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})

	canonical := make(map[string]string, len(vocab))
	alternatives := make([]string, 0, len(sorted))
	for _, label := range sorted {
		if strings.TrimSpace(label) == "" {
			return nil, errors.New("label vocabulary contains an empty label")
		}
		canonical[normalize(label)] = label

		words := strings.Fields(label)
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alternatives = append(alternatives, strings.Join(words, `\s+`))
	}

	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(alternatives, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compiling label pattern: %w", err)
	}

	return &LabelMatcher{re: re, canonical: canonical}, nil
}

// Extract returns the first vocabulary label found in the text, in its
// canonical spelling. The second return is false when nothing matches, which
// callers report as the Unparsable sentinel.
func (m *LabelMatcher) Extract(text string) (string, bool) {
	match := m.re.FindString(text)
	if match == "" {
		return "", false
	}
	return m.canonical[normalize(match)], true
}

// normalize lowercases a label and collapses internal whitespace so that
// matched text maps back onto its vocabulary entry.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
