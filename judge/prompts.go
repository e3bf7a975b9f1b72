/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"github.com/leemthompo/elasticsearch-labs/promptbuilder"
)

// relevancePrompt is the prompt for binary relevance judgment.
var relevancePrompt = promptbuilder.MustNew(`<task>
You are a search quality rater judging whether a document is relevant to a
search query. Consider whether the document would satisfy the information
need behind the query, not just whether it shares keywords with it.
</task>

<query>
{{query}}
</query>

<document>
{{document}}
</document>

<instructions>
1. Identify the information need behind the query.
2. Decide whether the document content satisfies that need.
3. A document that merely mentions query terms without addressing the need
   is Not Relevant.
4. Answer with exactly one of the following labels and nothing else:

Relevant
Not Relevant
</instructions>`)

// gradedRelevancePrompt is the prompt for 4-point graded relevance judgment.
var gradedRelevancePrompt = promptbuilder.MustNew(`<task>
You are a search quality rater assigning a graded relevance judgment to a
document for a search query, on the 4-point scale used in information
retrieval test collections.
</task>

<query>
{{query}}
</query>

<document>
{{document}}
</document>

<instructions>
1. Identify the information need behind the query.
2. Grade the document against that need using this scale:
   - Highly Relevant: the document is dedicated to the information need and
     fully satisfies it.
   - Relevant: the document addresses the information need with useful
     detail, but is not dedicated to it.
   - Partially Relevant: the document touches the topic but satisfies the
     need only in passing or in part.
   - Irrelevant: the document does not address the information need.
3. Answer with exactly one of the following labels and nothing else:

Irrelevant
Partially Relevant
Relevant
Highly Relevant
</instructions>`)

// document is the structured view of a request bound into the prompt.
type document struct {
	ID       string            `json:"id,omitempty"`
	Title    string            `json:"title,omitempty"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Bind implements promptbuilder.Bindable for Request.
func (r *Request) Bind(tmpl *promptbuilder.Template) (*promptbuilder.Template, error) {
	tmpl, err := tmpl.Bind("query", r.Query)
	if err != nil {
		return nil, err
	}
	return tmpl.BindJSON("document", document{
		ID:       r.DocID,
		Title:    r.Title,
		Body:     r.Body,
		Metadata: r.Metadata,
	})
}
