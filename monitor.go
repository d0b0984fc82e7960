package main

import (
	"github.com/spf13/cobra"

	"github.com/go-i2p/go-monotime/lib/config"
	"github.com/go-i2p/go-monotime/lib/monitor"
	"github.com/go-i2p/go-monotime/lib/util/signals"
)

func newMonitorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Run the drift monitor daemon",
		Long: `monitor samples the monotonic clock on a fixed interval, tracks the
drift accumulated against the wall clock, optionally corroborates it
with an NTP server, and serves Prometheus metrics.

SIGHUP reloads the configuration file; SIGINT and SIGTERM shut down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonitor()
		},
	}
}

func runMonitor() error {
	config.InitConfig()

	m, err := monitor.CreateMonitor(config.NewMonitorConfigFromViper())
	if err != nil {
		return err
	}

	go signals.Handle()
	defer signals.StopHandle()

	reloadID := signals.RegisterReloadHandler(func() {
		log.Debug("reloading monitor configuration")
		config.InitConfig()
		m.Reload(config.NewMonitorConfigFromViper())
	})
	defer signals.DeregisterReloadHandler(reloadID)

	interruptID := signals.RegisterInterruptHandler(m.Stop)
	defer signals.DeregisterInterruptHandler(interruptID)

	m.Start()
	m.Wait()
	return m.Close()
}
