//go:build darwin

package monotonic

import (
	"strconv"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/samber/oops"
)

// libSystemPath provides the mach time routines. Every darwin process has
// it mapped already, so dlopen just hands back a handle.
const libSystemPath = "/usr/lib/libSystem.B.dylib"

var (
	machAbsoluteTime func() uint64
	machTimebaseInfo func(unsafe.Pointer) int32
)

// newPlatformClock binds mach_absolute_time and queries the timebase once.
// Absolute time advances in ticks whose duration is numer/denom nanoseconds,
// so the whole conversion collapses into a single multiply per reading.
func newPlatformClock() (*Clock, error) {
	lib, err := purego.Dlopen(libSystemPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, oops.Wrapf(ErrBindingFailure, "dlopen %s: %v", libSystemPath, err)
	}

	absSym, err := purego.Dlsym(lib, "mach_absolute_time")
	if err != nil {
		return nil, oops.Wrapf(ErrBindingFailure, "resolving mach_absolute_time: %v", err)
	}
	tbSym, err := purego.Dlsym(lib, "mach_timebase_info")
	if err != nil {
		return nil, oops.Wrapf(ErrBindingFailure, "resolving mach_timebase_info: %v", err)
	}
	purego.RegisterFunc(&machAbsoluteTime, absSym)
	purego.RegisterFunc(&machTimebaseInfo, tbSym)

	var tb timebase
	if kr := machTimebaseInfo(unsafe.Pointer(&tb)); kr != 0 {
		return nil, oops.Wrapf(ErrBindingFailure, "mach_timebase_info returned %d", kr)
	}
	if !tb.valid() {
		return nil, oops.Wrapf(ErrBindingFailure, "mach timebase %d/%d is unusable", tb.numer, tb.denom)
	}

	scale := tb.scale()
	return &Clock{
		source: "mach_absolute_time",
		read: func() (float64, error) {
			return float64(machAbsoluteTime()) * scale, nil
		},
		details: map[string]string{
			"timebase_numer": strconv.FormatUint(uint64(tb.numer), 10),
			"timebase_denom": strconv.FormatUint(uint64(tb.denom), 10),
		},
	}, nil
}
