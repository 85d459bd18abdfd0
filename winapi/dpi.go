package winapi

import "fmt"

// dpiAwarenessPerMonitorV2 is DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2,
// defined by the Win32 headers as (DPI_AWARENESS_CONTEXT)(-4).
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

// DeclarePerMonitorDPIAwareV2 must be called before any monitor enumeration
// so rectangles are reported in physical pixels on the virtual desktop.
func DeclarePerMonitorDPIAwareV2() error {
	if procSetProcessDpiAwarenessCtx.Find() != nil {
		return fmt.Errorf("SetProcessDpiAwarenessContext not available on this Windows version")
	}
	r, _, _ := procSetProcessDpiAwarenessCtx.Call(dpiAwarenessPerMonitorV2)
	if r == 0 {
		return fmt.Errorf("SetProcessDpiAwarenessContext failed")
	}
	return nil
}
