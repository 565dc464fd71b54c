package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/midway/internal/config"
	"github.com/katalvlaran/midway/internal/logging"
	"github.com/katalvlaran/midway/meet"
)

// version information
var version = "dev"

// app holds state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	cfgPath string

	// flag overrides, applied only when set explicitly
	logLevel       string
	maxDiscoveries int
	timeout        time.Duration

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "midway",
		Short: "Shortest paths over implicit state graphs",
		Long: `midway finds shortest paths between two states of a graph that is only
known through its transitions, growing one search from each end until they meet.

Configuration is read from --config (YAML), then MIDWAY_* environment
variables, then flags.

Examples:
  # Path across an empty 10x10 grid
  midway grid --width 10 --height 10 --from 0,0 --to 9,4

  # Scramble a cube with 6 random turns and solve it
  midway cube --scramble 6 --seed 42

  # Solve 50 scrambles in parallel
  midway bench --count 50 --depth 5`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.IntVar(&a.maxDiscoveries, "max-discoveries", 0, "cap on discovered states per search (0 = none)")
	flags.DurationVar(&a.timeout, "timeout", 0, "cancel a search after this long (0 = never)")

	root.AddCommand(newGridCmd(a), newCubeCmd(a), newBenchCmd(a))
	return root
}

// setup loads configuration, applies explicit flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("max-discoveries") {
		cfg.Search.MaxDiscoveries = a.maxDiscoveries
	}
	if flags.Changed("timeout") {
		cfg.Search.Timeout = a.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger
	a.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.Int("max_discoveries", cfg.Search.MaxDiscoveries),
		zap.Duration("timeout", cfg.Search.Timeout),
	)

	return nil
}

// searchContext derives the per-search context from the configured timeout.
func (a *app) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Search.Timeout > 0 {
		return context.WithTimeout(parent, a.cfg.Search.Timeout)
	}
	return context.WithCancel(parent)
}

// searchOptions turns configuration into engine options.
func (a *app) searchOptions(ctx context.Context) []meet.Option {
	return []meet.Option{
		meet.WithContext(ctx),
		meet.WithLogger(a.log.Named("meet")),
		meet.WithMaxDiscoveries(a.cfg.Search.MaxDiscoveries),
	}
}
