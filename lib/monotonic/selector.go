package monotonic

import (
	"github.com/go-i2p/go-monotime/lib/util/version"
	"github.com/samber/oops"
)

// rawClockMinimum is the newest kernel release that does NOT get the raw
// clock: CLOCK_MONOTONIC_RAW was added in 2.6.28, so only strictly newer
// kernels can use it. The raw clock is preferred where available because it
// is immune to NTP frequency slewing, which gently speeds up or slows down
// CLOCK_MONOTONIC.
const rawClockMinimum = "2.6.28"

// useRawClock decides whether the given kernel release string should be
// served by the raw monotonic clock variant. The release is the uname -r
// string, e.g. "5.10.0-8-amd64"; only its leading dotted-numeric token
// participates in the comparison.
//
// A release that yields no comparable version is an error, not a silent
// downgrade. A clock selected from a misread version could be the wrong
// one, so resolution fails instead.
func useRawClock(release string) (bool, error) {
	v := version.LeadingNumeric(release)
	if v == "" {
		return false, oops.Errorf("kernel release %q has no leading version number", release)
	}
	cmp, err := version.Compare(v, rawClockMinimum)
	if err != nil {
		return false, oops.Wrapf(err, "comparing kernel release %q against %s", release, rawClockMinimum)
	}
	return cmp > 0, nil
}
