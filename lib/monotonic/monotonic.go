package monotonic

import (
	"sync"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Clock is a bound native monotonic time source. A Clock is obtained from
// Resolve, never constructed directly; the zero value is not usable.
//
// Clock is safe for concurrent use by multiple goroutines.
type Clock struct {
	// source names the native primitive backing this clock, e.g.
	// "clock_gettime(CLOCK_MONOTONIC_RAW)" or "mach_absolute_time".
	source string
	// read performs one native reading and converts it to fractional
	// seconds. Set by the platform binding.
	read func() (float64, error)
	// details holds resolution-time facts about the binding, such as the
	// kernel release consulted on linux or the timebase on darwin.
	details map[string]string
}

// Now returns the clock's current reading in fractional seconds since an
// arbitrary, fixed origin. Readings are only meaningful relative to other
// readings from the same process.
func (c *Clock) Now() (float64, error) {
	return c.read()
}

// Source returns the name of the native primitive backing this clock.
func (c *Clock) Source() string {
	return c.source
}

// Details returns resolution-time facts about the binding, such as the
// kernel release consulted on linux or the timebase on darwin. The map is
// a copy; platforms with nothing to report return nil.
func (c *Clock) Details() map[string]string {
	if len(c.details) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.details))
	for k, v := range c.details {
		out[k] = v
	}
	return out
}

// resolver performs at most one binding attempt and caches the outcome.
// The bind field exists so tests can substitute a fake platform binding;
// nil means the real one for the current platform.
type resolver struct {
	once  sync.Once
	bind  func() (*Clock, error)
	clock *Clock
	err   error
}

func (r *resolver) get() (*Clock, error) {
	r.once.Do(func() {
		bind := r.bind
		if bind == nil {
			bind = newPlatformClock
		}
		r.clock, r.err = resolve(bind)
	})
	return r.clock, r.err
}

// resolve binds the platform primitive and verifies it before handing it out.
// The verification takes two back-to-back readings and rejects the source if
// time appears to run backwards across them. Equal readings are fine; coarse
// sources legitimately return the same value twice.
func resolve(bind func() (*Clock, error)) (*Clock, error) {
	clock, err := bind()
	if err != nil {
		log.WithError(err).Error("Monotonic clock resolution failed")
		return nil, err
	}

	first, err := clock.read()
	if err != nil {
		log.WithError(err).Error("Monotonic clock failed its first reading")
		return nil, oops.Wrapf(err, "initial reading from %s", clock.source)
	}
	second, err := clock.read()
	if err != nil {
		log.WithError(err).Error("Monotonic clock failed its second reading")
		return nil, oops.Wrapf(err, "second reading from %s", clock.source)
	}
	if second < first {
		log.WithFields(logger.Fields{
			"source": clock.source,
			"first":  first,
			"second": second,
		}).Error("Monotonic clock went backwards during verification")
		return nil, oops.Wrapf(ErrSanityCheckFailure,
			"%s went backwards across consecutive readings (%v then %v)",
			clock.source, first, second)
	}

	log.WithFields(logger.Fields{
		"source":  clock.source,
		"reading": second,
	}).Debug("Resolved monotonic clock")
	return clock, nil
}

// defaultResolver backs the package-level Resolve and Now. One binding
// attempt per process; both the clock and any failure are cached for good.
var defaultResolver resolver

// Resolve returns the process-wide monotonic clock, binding it on first
// call. All callers observe the same outcome: if the first resolution
// fails, every later call returns the same error without retrying.
func Resolve() (*Clock, error) {
	return defaultResolver.get()
}

// Now returns the current reading of the process-wide monotonic clock in
// fractional seconds. It resolves the clock on first use.
func Now() (float64, error) {
	c, err := Resolve()
	if err != nil {
		return 0, err
	}
	return c.Now()
}

// Since returns the fractional seconds elapsed since an earlier reading
// obtained from Now.
func Since(start float64) (float64, error) {
	now, err := Now()
	if err != nil {
		return 0, err
	}
	return now - start, nil
}
