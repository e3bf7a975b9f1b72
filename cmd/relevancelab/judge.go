/*
Copyright 2026 Elasticsearch B.V.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/leemthompo/elasticsearch-labs/evalrun"
	"github.com/leemthompo/elasticsearch-labs/evals"
	"github.com/leemthompo/elasticsearch-labs/evals/report"
	"github.com/leemthompo/elasticsearch-labs/judge"
	"github.com/leemthompo/elasticsearch-labs/store"
)

var (
	judgeDataset     string
	judgeTask        string
	judgeSamples     int
	judgeConcurrency int
	judgePersist     bool
	judgeShowRows    bool
)

var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Judge the relevance of every pair in a dataset",
	Long: `Judge every query-document pair in a dataset file with an LLM and
report per-label precision, recall, and F1 against the dataset's human
labels. The judge backend is configured through JUDGE_* environment
variables (see judge.Config).`,
	RunE: runJudge,
}

func init() {
	rootCmd.AddCommand(judgeCmd)

	judgeCmd.Flags().StringVarP(&judgeDataset, "dataset", "f", "", "Dataset file (.json, .yaml, or .yml)")
	judgeCmd.Flags().StringVarP(&judgeTask, "task", "t", judge.TaskRelevance, fmt.Sprintf("Judgment task, one of %v", judge.TaskNames()))
	judgeCmd.Flags().IntVarP(&judgeSamples, "samples", "n", 1, "Generations to majority-vote over per pair")
	judgeCmd.Flags().IntVarP(&judgeConcurrency, "concurrency", "c", evalrun.DefaultConcurrency, "Concurrent judgment workers")
	judgeCmd.Flags().BoolVar(&judgePersist, "persist", false, "Persist result rows to the DuckDB store (STORE_PATH)")
	judgeCmd.Flags().BoolVar(&judgeShowRows, "rows", false, "Also print every result row")
	_ = judgeCmd.MarkFlagRequired("dataset")
}

func runJudge(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ds, err := evals.LoadDataset(judgeDataset)
	if err != nil {
		return err
	}

	var judgeCfg judge.Config
	if err := envconfig.Process(ctx, &judgeCfg); err != nil {
		return fmt.Errorf("failed to process judge config: %w", err)
	}
	j, err := judge.New(ctx, judgeCfg)
	if err != nil {
		return fmt.Errorf("failed to create judge: %w", err)
	}

	opts := []evalrun.Option{
		evalrun.WithConcurrency(judgeConcurrency),
		evalrun.WithObserver(evals.NewMetricsObserver(judgeTask)),
	}
	if judgePersist {
		var storeCfg store.Config
		if err := envconfig.Process(ctx, &storeCfg); err != nil {
			return fmt.Errorf("failed to process store config: %w", err)
		}
		st, err := store.Open(storeCfg)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, evalrun.WithSink(st))
	}

	runner, err := evalrun.New(j, opts...)
	if err != nil {
		return err
	}

	result, err := runner.Run(ctx, judgeTask, judgeSamples, ds)
	if err != nil {
		return err
	}

	fmt.Println(report.Summary(fmt.Sprintf("%s (%s, run %s)", ds.Name, judgeTask, result.RunID), result.Summary))
	if judgeShowRows {
		fmt.Println(report.Rows(result.Rows))
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d pairs failed to judge", result.Failed, len(ds.Pairs))
	}
	return nil
}
