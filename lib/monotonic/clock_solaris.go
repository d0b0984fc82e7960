//go:build solaris

package monotonic

import "golang.org/x/sys/unix"

// newPlatformClock binds clock_gettime(2) with CLOCK_MONOTONIC, which on
// Solaris and illumos reads the high-resolution gethrtime counter. The
// illumos port satisfies the solaris build constraint, so both land here.
func newPlatformClock() (*Clock, error) {
	return newPosixClock(unix.CLOCK_MONOTONIC, "clock_gettime(CLOCK_MONOTONIC)"), nil
}
