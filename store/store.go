/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/leemthompo/elasticsearch-labs/evals"
	"github.com/leemthompo/elasticsearch-labs/judge"
)

// Config holds the persistence settings.
type Config struct {
	// Path is the DuckDB database file. Empty means in-memory, discarded
	// when the store closes.
	Path string `env:"STORE_PATH"`
}

// Store writes result rows to DuckDB and answers summary queries.
type Store struct {
	db *sql.DB
}

var schema = []string{`
CREATE SEQUENCE IF NOT EXISTS results_seq`, `
CREATE TABLE IF NOT EXISTS results (
	id          BIGINT DEFAULT nextval('results_seq'),
	run_id      VARCHAR NOT NULL,
	task        VARCHAR NOT NULL,
	query_id    VARCHAR NOT NULL,
	query       VARCHAR NOT NULL,
	doc_id      VARCHAR NOT NULL,
	label       VARCHAR NOT NULL,
	human_label VARCHAR,
	agreement   DOUBLE NOT NULL,
	raw_samples VARCHAR,
	model       VARCHAR NOT NULL,
	created_at  TIMESTAMP DEFAULT current_timestamp
)`}

// Open creates (or reopens) the results database and ensures the schema
// exists.
func Open(cfg Config) (*Store, error) {
	db, err := sql.Open("duckdb", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create results schema: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// sampleSeparator joins raw samples into one column. The record separator
// control character does not occur in model output.
const sampleSeparator = "\x1e"

// Insert writes one result row.
func (s *Store) Insert(ctx context.Context, row evals.Row) error {
	var humanLabel sql.NullString
	if row.Judged() {
		humanLabel = sql.NullString{String: string(row.HumanLabel), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (run_id, task, query_id, query, doc_id, label, human_label, agreement, raw_samples, model)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.RunID, row.Task, row.QueryID, row.Query, row.DocID,
		string(row.Label), humanLabel, row.Agreement,
		strings.Join(row.RawSamples, sampleSeparator), row.Model,
	)
	if err != nil {
		return fmt.Errorf("failed to insert result for query %q doc %q: %w", row.QueryID, row.DocID, err)
	}
	return nil
}

// Rows returns every row of one run in insertion order.
func (s *Store) Rows(ctx context.Context, runID string) ([]evals.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, task, query_id, query, doc_id, label, human_label, agreement, raw_samples, model
		FROM results
		WHERE run_id = ?
		ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query run %q: %w", runID, err)
	}
	defer rows.Close()

	var out []evals.Row
	for rows.Next() {
		var r evals.Row
		var label string
		var humanLabel sql.NullString
		var rawSamples string
		if err := rows.Scan(&r.RunID, &r.Task, &r.QueryID, &r.Query, &r.DocID,
			&label, &humanLabel, &r.Agreement, &rawSamples, &r.Model); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		r.Label = judge.Label(label)
		if humanLabel.Valid {
			r.HumanLabel = judge.Label(humanLabel.String)
		}
		if rawSamples != "" {
			r.RawSamples = strings.Split(rawSamples, sampleSeparator)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read result rows: %w", err)
	}
	return out, nil
}

// RunSummary is one run's aggregate counts as stored.
type RunSummary struct {
	RunID      string
	Task       string
	Rows       int
	Correct    int
	Scored     int
	Unparsable int
}

// Runs summarizes every stored run, most recent first.
func (s *Store) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			run_id,
			any_value(task),
			count(*),
			count(*) FILTER (WHERE human_label IS NOT NULL AND label = human_label),
			count(*) FILTER (WHERE human_label IS NOT NULL),
			count(*) FILTER (WHERE label = ?)
		FROM results
		GROUP BY run_id
		ORDER BY max(id) DESC`,
		string(judge.Unparsable),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Task, &r.Rows, &r.Correct, &r.Scored, &r.Unparsable); err != nil {
			return nil, fmt.Errorf("failed to scan run summary: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read run summaries: %w", err)
	}
	return out, nil
}
