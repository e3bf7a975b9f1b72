/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// roundTripperFunc stubs the Elasticsearch HTTP transport.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"X-Elastic-Product": []string{"Elasticsearch"}, "Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	const response = `{
		"hits": {
			"hits": [
				{"_id": "d1", "_score": 3.2, "_source": {"title": "Tuning BM25", "body": "k1 and b explained"}},
				{"_id": "d2", "_score": 1.1, "_source": {"body": "untitled doc"}}
			]
		}
	}`

	var gotBody map[string]any
	transport := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if !strings.Contains(r.URL.Path, "/articles/_search") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		return respond(http.StatusOK, response), nil
	})

	c, err := newClientWithTransport(transport, "articles")
	require.NoError(t, err)

	hits, err := c.Search(context.Background(), MultiMatch{Text: "tuning bm25"}, 10)
	require.NoError(t, err)

	want := []Hit{
		{ID: "d1", Score: 3.2, Title: "Tuning BM25", Body: "k1 and b explained"},
		{ID: "d2", Score: 1.1, Body: "untitled doc"},
	}
	if diff := cmp.Diff(want, hits); diff != "" {
		t.Errorf("Search() mismatch (-want +got):\n%s", diff)
	}

	// The request body carries the size clause and the multi_match query.
	if got := gotBody["size"].(float64); got != 10 {
		t.Errorf("size = %v, want 10", got)
	}
	query := gotBody["query"].(map[string]any)
	if _, ok := query["multi_match"]; !ok {
		t.Errorf("query = %v, want multi_match", query)
	}
}

func TestSearchErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   Query
		k       int
		status  int
		body    string
		wantErr string
	}{{
		name:    "non-positive k",
		query:   Match{Field: "body", Text: "q"},
		k:       0,
		wantErr: "k must be positive",
	}, {
		name:    "empty match text",
		query:   Match{Field: "body"},
		k:       5,
		wantErr: "match query requires field and text",
	}, {
		name:    "empty multi_match text",
		query:   MultiMatch{},
		k:       5,
		wantErr: "multi_match query requires text",
	}, {
		name:    "server error",
		query:   Match{Field: "body", Text: "q"},
		k:       5,
		status:  http.StatusInternalServerError,
		body:    `{"error": "boom"}`,
		wantErr: "search returned",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				return respond(tt.status, tt.body), nil
			})
			c, err := newClientWithTransport(transport, "articles")
			require.NoError(t, err)

			_, err = c.Search(context.Background(), tt.query, tt.k)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	var gotDoc Document
	transport := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if !strings.Contains(r.URL.Path, "/articles/_doc/d1") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDoc))
		return respond(http.StatusCreated, `{"result": "created"}`), nil
	})

	c, err := newClientWithTransport(transport, "articles")
	require.NoError(t, err)

	doc := Document{Title: "Tuning BM25", Body: "k1 and b explained"}
	require.NoError(t, c.Index(context.Background(), "d1", doc))
	if diff := cmp.Diff(doc, gotDoc); diff != "" {
		t.Errorf("indexed document mismatch (-want +got):\n%s", diff)
	}
}
