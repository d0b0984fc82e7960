//go:build !linux && !darwin && !windows && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris

package monotonic

import (
	"runtime"

	"github.com/samber/oops"
)

// newPlatformClock reports that no native monotonic primitive is known for
// this operating system. There is deliberately no wall-clock fallback; the
// capability is absent rather than quietly degraded.
func newPlatformClock() (*Clock, error) {
	return nil, oops.Wrapf(ErrUnsupportedPlatform, "GOOS %s", runtime.GOOS)
}
