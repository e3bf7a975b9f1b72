/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"github.com/leemthompo/elasticsearch-labs/llm"
	"github.com/leemthompo/elasticsearch-labs/llm/extract"
)

// judger implements Interface on top of one executor per registered task.
// Providers differ only in how they build the executors.
type judger struct {
	execs    map[string]llm.Executor[*Request]
	matchers map[string]*extract.LabelMatcher
}

// newJudger builds the per-task executors and label matchers. The build
// callback receives each registry entry so providers can apply the task's
// template and token budget.
func newJudger(build func(t Task) (llm.Executor[*Request], error)) (Interface, error) {
	j := &judger{
		execs:    make(map[string]llm.Executor[*Request], len(tasks)),
		matchers: make(map[string]*extract.LabelMatcher, len(tasks)),
	}

	for name, t := range tasks {
		exec, err := build(t)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s executor: %w", name, err)
		}
		matcher, err := extract.NewLabelMatcher(t.vocabularyStrings())
		if err != nil {
			return nil, fmt.Errorf("failed to create %s label matcher: %w", name, err)
		}
		j.execs[name] = exec
		j.matchers[name] = matcher
	}

	return j, nil
}

// Judge implements Interface.
func (j *judger) Judge(ctx context.Context, request *Request) (*Verdict, error) {
	log := clog.FromContext(ctx)

	if err := request.Validate(); err != nil {
		return nil, err
	}

	exec, ok := j.execs[request.Task]
	if !ok {
		return nil, fmt.Errorf("unknown task %q (known tasks: %v)", request.Task, TaskNames())
	}
	matcher := j.matchers[request.Task]

	samples, err := exec.GenerateN(ctx, request, request.sampleCount())
	if err != nil {
		return nil, fmt.Errorf("generation failed for query %q doc %q: %w", request.QueryID, request.DocID, err)
	}

	labels := make([]Label, 0, len(samples))
	raw := make([]string, 0, len(samples))
	for _, s := range samples {
		raw = append(raw, s.Text)
		if label, ok := matcher.Extract(s.Text); ok {
			labels = append(labels, Label(label))
		} else {
			log.With("query_id", request.QueryID).
				With("doc_id", request.DocID).
				With("output", s.Text).
				Warn("Model output matched no vocabulary label")
			labels = append(labels, Unparsable)
		}
	}

	winner, agreement, votes := MajorityVote(labels)

	return &Verdict{
		Task:       request.Task,
		Label:      winner,
		Agreement:  agreement,
		Votes:      votes,
		RawSamples: raw,
		Model:      exec.Model(),
	}, nil
}
