package monotonic

import "time"

// Conversions from raw native readings to fractional seconds. These are
// kept separate from the platform bindings so the arithmetic is testable
// on every platform.

// AsDuration converts an interval in fractional seconds, typically the
// difference of two readings, to a time.Duration. Intervals beyond the
// representable range saturate instead of overflowing.
func AsDuration(seconds float64) time.Duration {
	const maxSeconds = float64(1<<63-1) / 1e9
	if seconds >= maxSeconds {
		return time.Duration(1<<63 - 1)
	}
	if seconds <= -maxSeconds {
		return time.Duration(-1 << 63)
	}
	return time.Duration(seconds * 1e9)
}

// timespecSeconds converts a clock_gettime result, whole seconds plus a
// nanosecond remainder, to fractional seconds.
func timespecSeconds(sec, nsec int64) float64 {
	return float64(sec) + float64(nsec)/1e9
}

// tickSeconds converts a millisecond tick count to fractional seconds.
func tickSeconds(ticks uint64) float64 {
	return float64(ticks) / 1000.0
}

// timebase mirrors the mach_timebase_info_data_t layout: the numerator and
// denominator of the fraction that converts absolute-time ticks to
// nanoseconds. On Apple silicon this is typically 125/3; on Intel 1/1.
type timebase struct {
	numer uint32
	denom uint32
}

// valid reports whether the ratio can be used as a divisor at all.
func (tb timebase) valid() bool {
	return tb.numer != 0 && tb.denom != 0
}

// scale returns the factor that converts ticks directly to fractional
// seconds: numer/denom gives nanoseconds, the 1e9 brings it to seconds.
func (tb timebase) scale() float64 {
	return float64(tb.numer) / float64(tb.denom) / 1e9
}
