//go:build windows

package monotonic

import (
	"unsafe"

	"github.com/samber/oops"
	"golang.org/x/sys/windows"
)

var (
	modkernel32        = windows.NewLazySystemDLL("kernel32.dll")
	procGetTickCount64 = modkernel32.NewProc("GetTickCount64")
)

// newPlatformClock binds GetTickCount64, the 64-bit millisecond counter of
// time since boot. It exists on Vista / Server 2008 and newer; unlike the
// 32-bit GetTickCount it does not roll over within any plausible uptime.
// Find surfaces a missing DLL or export as an error instead of the panic a
// bare Call would produce.
func newPlatformClock() (*Clock, error) {
	if err := procGetTickCount64.Find(); err != nil {
		return nil, oops.Wrapf(ErrBindingFailure, "locating kernel32 GetTickCount64: %v", err)
	}
	return &Clock{
		source: "GetTickCount64",
		read: func() (float64, error) {
			// GetTickCount64 has no failure mode, so the errno from
			// Call carries no signal here.
			r1, r2, _ := procGetTickCount64.Call()
			ticks := uint64(r1)
			if unsafe.Sizeof(uintptr(0)) == 4 {
				// On 386 a 64-bit return value arrives split across
				// r1 (low) and r2 (high). On 64-bit r2 is garbage.
				ticks |= uint64(r2) << 32
			}
			return tickSeconds(ticks), nil
		},
	}, nil
}
