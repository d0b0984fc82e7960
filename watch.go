package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/go-i2p/go-monotime/lib/tui"
)

func newWatchCommand() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live terminal dashboard of clock readings and drift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(interval)
		},
	}
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "refresh interval")
	return cmd
}
