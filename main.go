package main

import (
	"os"

	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"

	"github.com/go-i2p/go-monotime/lib/config"
)

var log = logger.GetGoI2PLogger()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monotime",
		Short: "Monotonic clock readings, drift tracking, and monitoring",
		Long: `monotime resolves the operating system's native monotonic clock
(mach_absolute_time on darwin, GetTickCount64 on windows, clock_gettime
elsewhere) and exposes it as seconds since an arbitrary origin.

Readings never decrease when the wall clock steps or slews, which makes
them suitable for measuring elapsed time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&config.CfgFile, "config", "",
		"config file (default $HOME/.go-monotime/config.yaml)")
	cmd.AddCommand(
		newNowCommand(),
		newInfoCommand(),
		newWatchCommand(),
		newMonitorCommand(),
	)
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Errorf("monotime: %s", err)
		os.Exit(1)
	}
}
