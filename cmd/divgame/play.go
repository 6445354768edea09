package main

import (
	"divgame/searcher"
	"divgame/tui"

	"github.com/spf13/cobra"
)

func (a *app) playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := a.load(cmd, map[string]string{"ai_delay": "ai-delay"}, false)
			if err != nil {
				return err
			}
			defer closeLog()

			algorithm, _ := searcher.ParseAlgorithm(a.cfg.Algorithm)
			return tui.Run(tui.Config{
				Depth:     a.cfg.Depth,
				Algorithm: algorithm,
				First:     a.cfg.FirstPlayer(),
				StartMin:  a.cfg.StartMin,
				StartMax:  a.cfg.StartMax,
				Seed:      a.cfg.Seed,
				AIDelay:   a.cfg.AIDelay,
			})
		},
	}
	cmd.Flags().Duration("ai-delay", 0, "pause before the computer moves")
	return cmd
}
