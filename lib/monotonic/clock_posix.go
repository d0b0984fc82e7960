//go:build linux || freebsd || netbsd || openbsd || dragonfly || solaris

package monotonic

import (
	"errors"
	"syscall"

	"github.com/samber/oops"
	"golang.org/x/sys/unix"
)

// newPosixClock builds a Clock over clock_gettime(2) with a fixed clock ID.
// x/sys/unix fills a Timespec directly from the syscall, so each reading is
// one kernel round trip (or a vDSO call) with no allocation.
func newPosixClock(clockID int32, source string) *Clock {
	return &Clock{
		source: source,
		read: func() (float64, error) {
			var ts unix.Timespec
			if err := unix.ClockGettime(clockID, &ts); err != nil {
				return 0, oops.Wrapf(ErrNativeCallFailure,
					"%s: errno %d (%v)", source, errnoOf(err), err)
			}
			sec, nsec := ts.Unix()
			return timespecSeconds(sec, nsec), nil
		},
	}
}

// errnoOf extracts the numeric errno from a syscall error, or 0 when the
// error carries none.
func errnoOf(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
