package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-i2p/go-monotime/lib/monotonic"
)

func newNowCommand() *cobra.Command {
	var (
		count    int
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print monotonic clock readings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(cmd, count, interval)
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&count, "count", "n", 1, "readings to print, 0 for unlimited")
	flags.DurationVarP(&interval, "interval", "i", time.Second, "delay between readings")
	return cmd
}

func runNow(cmd *cobra.Command, count int, interval time.Duration) error {
	clock, err := monotonic.Resolve()
	if err != nil {
		return err
	}
	for i := 0; count <= 0 || i < count; i++ {
		if i > 0 {
			time.Sleep(interval)
		}
		reading, err := clock.Now()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.9f\n", reading)
	}
	return nil
}
