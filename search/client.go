/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/elastic/go-elasticsearch/v8"
)

// Config holds the Elasticsearch connection settings.
type Config struct {
	// Addresses lists the cluster node URLs, comma-separated in the
	// environment.
	Addresses []string `env:"ELASTICSEARCH_URL, default=http://localhost:9200"`

	// APIKey authenticates against Elastic Cloud deployments. Empty for
	// unsecured local clusters.
	APIKey string `env:"ELASTICSEARCH_API_KEY"`

	// Index is the default index searched when a call does not name one.
	Index string `env:"ELASTICSEARCH_INDEX, default=search-labs"`
}

// Client is a thin retrieval wrapper over the Elasticsearch API.
type Client struct {
	es    *elasticsearch.Client
	index string
}

// NewClient connects to the configured cluster.
func NewClient(cfg Config) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		APIKey:    cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return &Client{es: es, index: cfg.Index}, nil
}

// newClientWithTransport is a test seam for injecting a stub transport.
func newClientWithTransport(transport http.RoundTripper, index string) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Transport: transport})
	if err != nil {
		return nil, err
	}
	return &Client{es: es, index: index}, nil
}

// Hit is one retrieved document with its relevance score.
type Hit struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Title string  `json:"title,omitempty"`
	Body  string  `json:"body"`
}

// Document is the indexed form of a document.
type Document struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

// searchResponse mirrors the slice of the search API response we consume.
type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string   `json:"_id"`
			Score  float64  `json:"_score"`
			Source Document `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs a query body against the default index and returns up to k
// hits in score order.
func (c *Client) Search(ctx context.Context, query Query, k int) ([]Hit, error) {
	log := clog.FromContext(ctx)

	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	body, err := query.body(k)
	if err != nil {
		return nil, err
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search returned %s: %s", res.Status(), strings.TrimSpace(string(msg)))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hits := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hits = append(hits, Hit{
			ID:    h.ID,
			Score: h.Score,
			Title: h.Source.Title,
			Body:  h.Source.Body,
		})
	}

	log.With("index", c.index).
		With("hits", len(hits)).
		Debug("Search completed")
	return hits, nil
}

// Index stores one document under the given ID, refreshing so it is
// immediately searchable. Intended for example datasets, not bulk loads.
func (c *Client) Index(ctx context.Context, id string, doc Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", id, err)
	}

	res, err := c.es.Index(
		c.index,
		bytes.NewReader(body),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(id),
		c.es.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("index request for %q failed: %w", id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("indexing %q returned %s: %s", id, res.Status(), strings.TrimSpace(string(msg)))
	}
	return nil
}
