package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"divgame/config"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("divgame failed")
		os.Exit(1)
	}
}

// app is shared by every subcommand once flags, environment and config file
// have been merged.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "divgame",
		Short:         "Play the division game against a minimax or alpha-beta computer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.Int("depth", 0, "search depth in plies")
	flags.String("algorithm", "", "search algorithm: minimax or alphabeta")
	flags.String("first", "", "who moves first: human or computer")
	flags.Int("start-min", 0, "lowest start number")
	flags.Int("start-max", 0, "highest start number")
	flags.Uint64("seed", 0, "random seed, 0 for a time-based seed")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-file", "", "write logs to this file")
	a.bind(root, map[string]string{
		"depth":     "depth",
		"algorithm": "algorithm",
		"first":     "first",
		"start_min": "start-min",
		"start_max": "start-max",
		"seed":      "seed",
		"log_level": "log-level",
		"log_file":  "log-file",
	})

	root.AddCommand(
		a.playCmd(),
		a.serveCmd(),
		a.compareCmd(),
		a.simulateCmd(),
	)
	return root
}

// bind maps config keys to flags so a flag only overrides the config when
// it was set on the command line.
func (a *app) bind(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		flag := cmd.PersistentFlags().Lookup(name)
		if flag == nil {
			flag = cmd.Flags().Lookup(name)
		}
		if flag == nil {
			panic(fmt.Sprintf("no flag %q for config key %q", name, key))
		}
		if err := a.v.BindPFlag(key, flag); err != nil {
			panic(err)
		}
	}
}

// load binds the running subcommand's flags, resolves the configuration and
// sets up logging. Subcommands share config keys, so their flags are bound
// only once the subcommand runs.
func (a *app) load(cmd *cobra.Command, keys map[string]string, console bool) (func(), error) {
	a.bind(cmd, keys)
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return setupLogging(cfg, console)
}
