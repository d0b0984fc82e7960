//go:build !windows

package signals

import (
	"os/signal"
	"syscall"
)

func init() {
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
}

// Handle dispatches incoming signals until StopHandle closes the channel.
// SIGHUP runs the reload handlers, SIGINT and SIGTERM the interrupt
// handlers with a bounded shutdown grace. Run it on its own goroutine.
func Handle() {
	for sig := range sigChan {
		switch sig {
		case syscall.SIGHUP:
			reloaders.run()
		case syscall.SIGINT, syscall.SIGTERM:
			interrupters.runTimeout(shutdownGrace)
		}
	}
}
