/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/leemthompo/elasticsearch-labs/search"
)

var indexFile string

// corpusDoc is one document in an ingest file.
type corpusDoc struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index a JSON corpus file into Elasticsearch",
	Long: `Index documents from a JSON file (an array of {id, title, body} objects)
into the configured Elasticsearch index, refreshing after each document so
they are immediately searchable.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVarP(&indexFile, "file", "f", "", "Corpus file to index")
	_ = indexCmd.MarkFlagRequired("file")
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := clog.FromContext(ctx)

	data, err := os.ReadFile(indexFile)
	if err != nil {
		return fmt.Errorf("failed to read corpus: %w", err)
	}
	var docs []corpusDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("failed to parse %s: %w", indexFile, err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("corpus %s has no documents", indexFile)
	}

	var cfg search.Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	client, err := search.NewClient(cfg)
	if err != nil {
		return err
	}

	for i, doc := range docs {
		if doc.ID == "" || doc.Body == "" {
			return fmt.Errorf("document %d needs id and body", i)
		}
		if err := client.Index(ctx, doc.ID, search.Document{Title: doc.Title, Body: doc.Body}); err != nil {
			return err
		}
	}

	log.With("documents", len(docs)).
		With("index", cfg.Index).
		Info("Corpus indexed")
	return nil
}
