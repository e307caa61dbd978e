package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/wflog/pkg/core/config"
	"github.com/msto63/wflog/pkg/core/logging"
)

// options holds the global flags
type options struct {
	cfgFile string
	level   string
}

// NewRootCmd builds the wflog command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "wflog",
		Short: "Whiteflag leveled logger",
		Long: `wflog writes leveled log lines to stdout and stderr.

Severity levels, most to least severe:
  1 fatal, 2 error, 3 warn, 4 info, 5 debug, 6 trace

Messages less severe than the threshold (default info) are dropped.
fatal and error go to stderr, the rest to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $"+config.EnvConfig+" or ./configs/wflog.toml)")
	rootCmd.PersistentFlags().StringVarP(&opts.level, "level", "l", "", "logging threshold, name or 1-6 (overrides config)")

	rootCmd.AddCommand(
		newEmitCmd(opts),
		newPipeCmd(opts),
		newLevelsCmd(opts),
		newLevelCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(rootCmd, err)
		return err
	}
	return nil
}

// loadConfig resolves the configuration from --config, the environment and
// --level, in increasing precedence
func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if o.level != "" {
		cfg.Logging.Level = o.level
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger creates the process logger writing to the command's streams
func (o *options) newLogger(cmd *cobra.Command) (*logging.Logger, *config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := cfg.NewLogger(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	return log, cfg, nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
