package monotonic

import "github.com/samber/oops"

// Sentinel errors for the distinct ways resolution and reading can fail.
// Use errors.Is to classify an error returned by Resolve or Now; the
// returned error usually wraps one of these with platform detail.
var (
	// ErrUnsupportedPlatform: no native monotonic primitive is known for
	// the current operating system. Permanent for the process lifetime.
	ErrUnsupportedPlatform = oops.New("no monotonic clock source for this platform")

	// ErrBindingFailure: a primitive exists for this platform but locating
	// or initializing it failed (missing symbol, unusable timebase,
	// unreadable kernel version).
	ErrBindingFailure = oops.New("monotonic clock source could not be bound")

	// ErrNativeCallFailure: the bound primitive returned an error when read.
	ErrNativeCallFailure = oops.New("monotonic clock read failed")

	// ErrSanityCheckFailure: the primitive bound and read successfully but
	// produced readings that went backwards.
	ErrSanityCheckFailure = oops.New("monotonic clock is not monotonic")
)
