package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/wflog/pkg/core/logging"
)

func newEmitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "emit <severity> <origin> [message...]",
		Short: "Write one log line",
		Long: `Write one log line if the severity passes the threshold.

The message is the remaining arguments joined by spaces and may be empty.`,
		Example: `  wflog emit warn net retrying
  wflog --level debug emit debug auth "token refreshed"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			severity, err := logging.ParseLevel(args[0])
			if err != nil {
				return err
			}

			log, _, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}

			log.Log(severity, args[1], strings.Join(args[2:], " "))
			return nil
		},
	}
}
