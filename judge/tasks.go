/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"
	"sort"

	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
)

// Task is a registry entry: prompt template, expected label vocabulary, and
// token budget for one judgment task.
type Task struct {
	// Name is the registry key.
	Name string

	// Template is the prompt template with query and document placeholders.
	Template *promptbuilder.Template

	// Vocabulary is the closed label set the model must answer from.
	Vocabulary []Label

	// MaxTokens is the completion token budget for this task.
	MaxTokens int64
}

// Registry keys.
const (
	// TaskRelevance is binary relevance judgment.
	TaskRelevance = "relevance"
	// TaskRelevanceGraded is 4-point graded relevance judgment.
	TaskRelevanceGraded = "relevance-graded"
)

// tasks is the static task registry.
var tasks = map[string]Task{
	TaskRelevance: {
		Name:       TaskRelevance,
		Template:   relevancePrompt,
		Vocabulary: []Label{Relevant, NotRelevant},
		MaxTokens:  128,
	},
	TaskRelevanceGraded: {
		Name:       TaskRelevanceGraded,
		Template:   gradedRelevancePrompt,
		Vocabulary: []Label{Irrelevant, PartiallyRelevant, Relevant, HighlyRelevant},
		MaxTokens:  128,
	},
}

// LookupTask returns the registry entry for a task name.
func LookupTask(name string) (Task, error) {
	t, ok := tasks[name]
	if !ok {
		return Task{}, fmt.Errorf("unknown task %q (known tasks: %v)", name, TaskNames())
	}
	return t, nil
}

// TaskNames returns the registered task names in sorted order.
func TaskNames() []string {
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// vocabularyStrings converts a task vocabulary for the label matcher.
func (t Task) vocabularyStrings() []string {
	out := make([]string, len(t.Vocabulary))
	for i, l := range t.Vocabulary {
		out[i] = string(l)
	}
	return out
}
