/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexec

import (
	"testing"

	"github.com/openai/openai-go"

	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
)

func TestNewOptions(t *testing.T) {
	t.Parallel()

	tmpl := promptbuilder.MustNew("judge this: {{input}}")

	tests := []struct {
		name      string
		tmpl      *promptbuilder.Template
		opts      []Option[promptbuilder.Noop]
		wantModel string
		wantErr   bool
	}{{
		name:      "defaults",
		tmpl:      tmpl,
		wantModel: "gpt-4o-mini",
	}, {
		name: "phi-3 model name",
		tmpl: tmpl,
		opts: []Option[promptbuilder.Noop]{
			WithModel[promptbuilder.Noop]("phi-3-mini-4k-instruct"),
			WithMaxTokens[promptbuilder.Noop](256),
			WithTemperature[promptbuilder.Noop](0.7),
		},
		wantModel: "phi-3-mini-4k-instruct",
	}, {
		name:    "nil template",
		tmpl:    nil,
		wantErr: true,
	}, {
		name:    "empty model",
		tmpl:    tmpl,
		opts:    []Option[promptbuilder.Noop]{WithModel[promptbuilder.Noop]("")},
		wantErr: true,
	}, {
		name:    "negative max tokens",
		tmpl:    tmpl,
		opts:    []Option[promptbuilder.Noop]{WithMaxTokens[promptbuilder.Noop](-1)},
		wantErr: true,
	}, {
		name:    "temperature out of range",
		tmpl:    tmpl,
		opts:    []Option[promptbuilder.Noop]{WithTemperature[promptbuilder.Noop](2.5)},
		wantErr: true,
	}, {
		name:    "nil system prompt",
		tmpl:    tmpl,
		opts:    []Option[promptbuilder.Noop]{WithSystemPrompt[promptbuilder.Noop](nil)},
		wantErr: true,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exec, err := New(openai.Client{}, tt.tmpl, tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Error("New() = nil, wanted error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() = %v", err)
			}
			if exec.Model() != tt.wantModel {
				t.Errorf("Model() = %q, want %q", exec.Model(), tt.wantModel)
			}
		})
	}
}
