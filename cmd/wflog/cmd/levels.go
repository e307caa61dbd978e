package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/wflog/pkg/core/logging"
)

func newLevelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List severity levels and mark the active threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, _, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			threshold := log.GetLevel()
			for _, level := range logging.AllLevels() {
				marker := " "
				if level == threshold {
					marker = "*"
				}
				stream := "stdout"
				if level.Stream() == logging.StreamError {
					stream = "stderr"
				}
				fmt.Fprintf(out, "%s %d  %-5s  [%s]  %s\n", marker, level, level, level.Tag(), stream)
			}
			return nil
		},
	}
}

func newLevelCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "level [value]",
		Short: "Show the threshold or check a new one",
		Long: `Without an argument, print the active threshold.

With an argument, set the threshold to it and print the result. An invalid
value leaves the threshold unchanged and exits with status 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, _, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}

			level := log.GetLevel()
			if len(args) == 1 {
				level, err = setLevel(log, args[0])
				if err != nil {
					return fmt.Errorf("%w (threshold remains %s)", err, level)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", level, level)
			return nil
		},
	}
}

// setLevel passes integers straight to SetLevel and names through ParseLevel
func setLevel(log *logging.Logger, value string) (logging.Level, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return log.SetLevel(n)
	}
	parsed, err := logging.ParseLevel(value)
	if err != nil {
		return log.GetLevel(), err
	}
	return log.SetLevel(int(parsed))
}
