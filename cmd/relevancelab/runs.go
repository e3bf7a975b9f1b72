/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/leemthompo/elasticsearch-labs/evals"
	"github.com/leemthompo/elasticsearch-labs/evals/report"
	"github.com/leemthompo/elasticsearch-labs/store"
)

var runsShowRows string

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List persisted evaluation runs",
	Long: `List the evaluation runs persisted in the DuckDB store (STORE_PATH),
most recent first, or re-summarize one run's rows with --run.`,
	RunE: runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().StringVar(&runsShowRows, "run", "", "Summarize one run ID instead of listing")
}

func runRuns(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var cfg store.Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return fmt.Errorf("failed to process store config: %w", err)
	}
	if cfg.Path == "" {
		return fmt.Errorf("STORE_PATH is required to query past runs")
	}
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if runsShowRows != "" {
		rows, err := st.Rows(ctx, runsShowRows)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("no rows for run %q", runsShowRows)
		}
		fmt.Println(report.Summary(fmt.Sprintf("run %s", runsShowRows), evals.Summarize(rows)))
		fmt.Println(report.Rows(rows))
		return nil
	}

	runs, err := st.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs stored yet.")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  task=%s rows=%d scored=%d correct=%d unparsable=%d\n",
			r.RunID, r.Task, r.Rows, r.Scored, r.Correct, r.Unparsable)
	}
	return nil
}
