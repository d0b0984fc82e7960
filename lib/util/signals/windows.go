//go:build windows

package signals

import (
	"os"
	"os/signal"
)

func init() {
	signal.Notify(sigChan, os.Interrupt)
}

// Handle dispatches incoming signals until StopHandle closes the channel.
// Windows has no SIGHUP, so only interrupt handlers ever run here and a
// configuration change requires a restart.
func Handle() {
	for sig := range sigChan {
		if sig == os.Interrupt {
			interrupters.runTimeout(shutdownGrace)
		}
	}
}
