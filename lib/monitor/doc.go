// Package monitor runs the long-lived drift monitor daemon.
//
// A Monitor owns the resolved monotonic clock, a drift tracker baselined at
// startup, an optional NTP probe, and an optional Prometheus endpoint. Its
// lifecycle follows the usual create/start/stop shape:
//
//	m, err := monitor.CreateMonitor(cfg)
//	m.Start()
//	m.Wait()
//	m.Close()
//
// Stop may be called from any goroutine (typically a signal handler) and
// returns immediately; Wait unblocks once the sampler loop has exited.
package monitor
