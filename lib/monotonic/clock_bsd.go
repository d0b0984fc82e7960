//go:build freebsd || netbsd || openbsd || dragonfly

package monotonic

import "golang.org/x/sys/unix"

// newPlatformClock binds clock_gettime(2) with CLOCK_MONOTONIC. The BSDs
// have carried it since long before any release still in support, so there
// is no version check to do here.
func newPlatformClock() (*Clock, error) {
	return newPosixClock(unix.CLOCK_MONOTONIC, "clock_gettime(CLOCK_MONOTONIC)"), nil
}
