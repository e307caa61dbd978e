package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/wflog/pkg/core/config"
	"github.com/msto63/wflog/pkg/core/logging"
)

type pipeOptions struct {
	severity string
	origin   string
	watch    bool
}

func newPipeCmd(opts *options) *cobra.Command {
	pipeOpts := &pipeOptions{}

	pipeCmd := &cobra.Command{
		Use:   "pipe",
		Short: "Log every line read from stdin",
		Long: `Log every line read from stdin with a fixed severity and origin.

With --watch the threshold is reloaded whenever the config file changes.`,
		Example: `  tail -f app.out | wflog pipe --origin app --severity debug --config wflog.toml --watch`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipe(cmd, opts, pipeOpts)
		},
	}

	pipeCmd.Flags().StringVarP(&pipeOpts.severity, "severity", "s", "info", "severity of each line")
	pipeCmd.Flags().StringVarP(&pipeOpts.origin, "origin", "o", "stdin", "origin label of each line")
	pipeCmd.Flags().BoolVarP(&pipeOpts.watch, "watch", "w", false, "reload the threshold when the config file changes")

	return pipeCmd
}

func runPipe(cmd *cobra.Command, opts *options, pipeOpts *pipeOptions) error {
	severity, err := logging.ParseLevel(pipeOpts.severity)
	if err != nil {
		return err
	}

	log, cfg, err := opts.newLogger(cmd)
	if err != nil {
		return err
	}

	if pipeOpts.watch {
		if cfg.Path() == "" {
			return errors.New("--watch needs a config file")
		}
		watcher := config.NewWatcher(cfg.Path(), log, cfg.Logging.WatchDebounce.Duration)
		if err := watcher.Start(cmd.Context()); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		log.Log(severity, pipeOpts.origin, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
