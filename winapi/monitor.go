package winapi

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// MonitorInfo is the raw per-monitor data the OS reports, before the
// topology package turns it into a Monitor value object.
type MonitorInfo struct {
	Handle     uintptr
	Bounds     Rect
	Primary    bool
	DeviceName string
}

// EnumMonitors enumerates every active display device on the virtual
// desktop. It mirrors EnumDisplayMonitors+GetMonitorInfoW exactly the way
// the reference implementation's MonitorEnumProc does.
func EnumMonitors() ([]MonitorInfo, error) {
	var monitors []MonitorInfo
	var cbErr error

	cb := windows.NewCallback(func(hMonitor uintptr, _ uintptr, _ uintptr, _ uintptr) uintptr {
		var mi monitorInfoExW
		mi.size = uint32(unsafe.Sizeof(mi))

		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret == 0 {
			return 1 // keep enumerating; this monitor is simply skipped
		}

		monitors = append(monitors, MonitorInfo{
			Handle:     hMonitor,
			Bounds:     mi.monitor,
			Primary:    mi.flags&monitorInfoFPrimary != 0,
			DeviceName: windows.UTF16ToString(mi.device[:]),
		})
		return 1
	})

	ret, _, callErr := procEnumDisplayMonitors.Call(0, 0, cb, 0)
	if ret == 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", callErr)
		}
		return nil, fmt.Errorf("EnumDisplayMonitors failed")
	}
	return monitors, cbErr
}

// MonitorFromPoint returns the handle of the monitor containing pt, or 0 if
// pt does not lie on any monitor (MONITOR_DEFAULTTONULL semantics).
func MonitorFromPoint(pt Point) uintptr {
	const monitorDefaultToNull = 0
	// MonitorFromPoint takes POINT by value. On the amd64 ABI an 8-byte
	// struct is passed in a single register, so X/Y are packed into one
	// uintptr argument rather than passed as two.
	packed := uintptr(uint32(pt.X)) | uintptr(uint32(pt.Y))<<32
	ret, _, _ := procMonitorFromPoint.Call(packed, monitorDefaultToNull)
	return ret
}
