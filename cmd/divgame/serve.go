package main

import (
	"divgame/searcher"
	"divgame/server"

	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game as a local JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := a.load(cmd, map[string]string{"listen": "listen"}, true)
			if err != nil {
				return err
			}
			defer closeLog()

			algorithm, _ := searcher.ParseAlgorithm(a.cfg.Algorithm)
			srv := server.New(server.Config{
				Addr:      a.cfg.Listen,
				Depth:     a.cfg.Depth,
				Algorithm: algorithm,
				StartMin:  a.cfg.StartMin,
				StartMax:  a.cfg.StartMax,
				Seed:      a.cfg.Seed,
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}
	cmd.Flags().String("listen", "", "address to listen on")
	return cmd
}
