// Package monotonic resolves the operating system's native monotonic time
// source and exposes it as fractional seconds since an arbitrary origin.
//
// Wall clocks jump: NTP corrections, manual adjustments, and DST transitions
// all move them backwards or forwards without warning. Code that measures
// elapsed time against a wall clock inherits those jumps. The readings
// produced by this package only ever move forward, which makes them safe for
// interval measurement, timeout bookkeeping, and rate calculations.
//
// The native primitive differs per platform: mach_absolute_time on Apple
// systems, GetTickCount64 on Windows, and clock_gettime elsewhere. On Linux
// the clock ID is additionally chosen from the running kernel version, since
// CLOCK_MONOTONIC_RAW only exists on kernels newer than 2.6.28. Resolution
// happens once per process; the outcome, success or failure, is cached and
// every later caller observes the same result.
//
// There is no fallback to wall-clock time. On platforms without a known
// monotonic primitive, or when binding one fails, Resolve and Now return an
// error and keep returning it. Callers that can tolerate degraded readings
// must arrange that themselves.
//
// Typical use:
//
//	start, err := monotonic.Now()
//	if err != nil {
//	    // no monotonic source on this platform
//	}
//	// ... later ...
//	elapsed, _ := monotonic.Since(start)
//
// For repeated measurements hold on to the resolved clock:
//
//	clock, err := monotonic.Resolve()
//	reading, err := clock.Now()
package monotonic
