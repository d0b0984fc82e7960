//go:build linux

package monotonic

import (
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"golang.org/x/sys/unix"
)

// newPlatformClock binds clock_gettime(2) with a clock ID picked from the
// running kernel: CLOCK_MONOTONIC_RAW on kernels newer than 2.6.28,
// CLOCK_MONOTONIC on anything older. The kernel version comes from uname(2),
// so a malformed release string fails the binding rather than guessing.
func newPlatformClock() (*Clock, error) {
	release, err := kernelRelease()
	if err != nil {
		return nil, oops.Wrapf(ErrBindingFailure, "reading kernel release: %v", err)
	}

	raw, err := useRawClock(release)
	if err != nil {
		return nil, oops.Wrapf(ErrBindingFailure, "selecting clock for kernel %q: %v", release, err)
	}

	clockID := int32(unix.CLOCK_MONOTONIC)
	source := "clock_gettime(CLOCK_MONOTONIC)"
	if raw {
		clockID = unix.CLOCK_MONOTONIC_RAW
		source = "clock_gettime(CLOCK_MONOTONIC_RAW)"
	}

	log.WithFields(logger.Fields{
		"kernel": release,
		"source": source,
	}).Debug("Selected Linux monotonic clock")

	clock := newPosixClock(clockID, source)
	clock.details = map[string]string{"kernel_release": release}
	return clock, nil
}

// kernelRelease returns the release field of uname(2), e.g. "5.10.0-8-amd64".
func kernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
