package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const whMouseLL = 14

// HookProc is the Go shape of a low-level mouse hook procedure. nCode,
// wParam and the decoded MSLLHOOKSTRUCT are handed to it already parsed;
// returning true tells the caller to swallow the event (the hook will
// return a nonzero LRESULT instead of chaining to CallNextHookEx).
type HookProc func(nCode int32, wParam uintptr, ms *MSLLHOOKSTRUCT) (handled bool)

// MouseHook is a handle to an installed WH_MOUSE_LL hook.
type MouseHook struct {
	handle   uintptr
	callback uintptr // kept alive for the lifetime of the hook
}

// InstallMouseHook registers proc as the process's low-level mouse hook.
// Only one should be active at a time per the single-threaded dispatcher
// contract in the concurrency design.
func InstallMouseHook(proc HookProc) (*MouseHook, error) {
	var hookHandle uintptr

	cb := windows.NewCallback(func(nCode int32, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 && wParam == WMMouseMove {
			ms := (*MSLLHOOKSTRUCT)(unsafe.Pointer(lParam))
			if proc(nCode, wParam, ms) {
				return 1
			}
		}
		next, _, _ := procCallNextHookEx.Call(hookHandle, uintptr(nCode), wParam, lParam)
		return next
	})

	h, _, callErr := procSetWindowsHookExW.Call(whMouseLL, cb, 0, 0)
	if h == 0 {
		return nil, fmt.Errorf("SetWindowsHookExW(WH_MOUSE_LL) failed: %w", callErr)
	}
	hookHandle = h

	return &MouseHook{handle: h, callback: cb}, nil
}

// Uninstall removes the hook. Safe to call once; a second call is a no-op.
func (h *MouseHook) Uninstall() {
	if h == nil || h.handle == 0 {
		return
	}
	procUnhookWindowsHookEx.Call(h.handle)
	h.handle = 0
}
