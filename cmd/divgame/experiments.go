package main

import (
	"fmt"

	"divgame/experiments"
	"divgame/experiments/metrics"

	"github.com/spf13/cobra"
)

func experimentFlags(cmd *cobra.Command, keys map[string]string) map[string]string {
	cmd.Flags().String("out", "", "directory for result files, empty to skip writing")
	cmd.Flags().String("format", "", "result file format: csv or parquet")
	keys["experiments.dir"] = "out"
	keys["experiments.format"] = "format"
	return keys
}

func (a *app) output() experiments.Output {
	format, _ := metrics.ParseFormat(a.cfg.Experiments.Format)
	return experiments.Output{Dir: a.cfg.Experiments.Dir, Format: format}
}

func (a *app) compareCmd() *cobra.Command {
	var keys map[string]string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare minimax and alpha-beta on sampled positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := a.load(cmd, keys, true)
			if err != nil {
				return err
			}
			defer closeLog()

			_, summaries, err := experiments.Compare(cmd.Context(), experiments.CompareConfig{
				Samples:  a.cfg.Experiments.Samples,
				Depths:   a.cfg.Experiments.Depths,
				Workers:  a.cfg.Experiments.Workers,
				StartMin: a.cfg.StartMin,
				StartMax: a.cfg.StartMax,
				Seed:     a.cfg.Seed,
				Output:   a.output(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %16s %16s %8s\n", "depth", "minimax nodes", "alphabeta nodes", "pruned")
			for _, s := range summaries {
				fmt.Fprintf(out, "%-6d %16d %16d %7.1f%%\n", s.Depth, s.MinimaxNodes, s.AlphaBetaNodes, 100*s.Pruned())
			}
			return nil
		},
	}
	cmd.Flags().Int("samples", 0, "number of sampled positions")
	cmd.Flags().IntSlice("depths", nil, "search depths to compare")
	cmd.Flags().Int("workers", 0, "concurrent searches")
	keys = experimentFlags(cmd, map[string]string{
		"experiments.samples": "samples",
		"experiments.depths":  "depths",
		"experiments.workers": "workers",
	})
	return cmd
}

func (a *app) simulateCmd() *cobra.Command {
	var keys map[string]string
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play full games of each algorithm against a random opponent",
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := a.load(cmd, keys, true)
			if err != nil {
				return err
			}
			defer closeLog()

			result, err := experiments.Simulate(experiments.SimulateConfig{
				Games:    a.cfg.Experiments.Games,
				Depth:    a.cfg.Depth,
				StartMin: a.cfg.StartMin,
				StartMax: a.cfg.StartMax,
				Seed:     a.cfg.Seed,
				Output:   a.output(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %6s %9s %6s %5s\n", "algorithm", "depth", "computer", "human", "draw")
			for _, c := range result.Configs {
				computer, human, draw := result.Wins(c.ID)
				fmt.Fprintf(out, "%-10s %6d %9d %6d %5d\n", c.Algorithm, c.Depth, computer, human, draw)
			}
			return nil
		},
	}
	cmd.Flags().Int("games", 0, "games per algorithm")
	keys = experimentFlags(cmd, map[string]string{"experiments.games": "games"})
	return cmd
}
