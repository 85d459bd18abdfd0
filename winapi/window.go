package winapi

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ErrClassRegistrationFailed distinguishes a RegisterClassExW failure from a
// CreateWindowExW failure inside CreateHiddenWindow, so a caller can tell
// apart "the window class is rejected" from "the window itself is refused".
var ErrClassRegistrationFailed = errors.New("winapi: RegisterClassExW failed")

// WindowProc is the Go shape of a window procedure. Returning (0, true)
// means "handled, don't call DefWindowProc"; (_, false) delegates to
// DefWindowProc with the given message untouched.
type WindowProc func(hwnd uintptr, msg uint32, wParam, lParam uintptr) (result uintptr, handled bool)

type wndClassExW struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     uintptr
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       uintptr
}

type msgT struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      Point
}

// CurrentModuleHandle returns the HINSTANCE of the running process, used as
// the window class owner. The mouse hook is registered with a null hMod.
func CurrentModuleHandle() uintptr {
	h, _, _ := procGetModuleHandleW.Call(0)
	return h
}

// CurrentThreadID returns the OS thread ID of the calling thread. The
// dispatcher calls this once, from the thread that will run the message
// loop, so a later shutdown request can target it with PostThreadMessageW.
func CurrentThreadID() uint32 {
	r, _, _ := procGetCurrentThreadId.Call()
	return uint32(r)
}

// CreateHiddenWindow registers a window class named className and creates a
// single WS_POPUP window of that class, never shown, used purely as a
// carrier for WM_DISPLAYCHANGE / WM_SETTINGCHANGE / WM_TIMER / WM_CLOSE.
func CreateHiddenWindow(className string, proc WindowProc) (hwnd uintptr, err error) {
	classNamePtr, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return 0, fmt.Errorf("invalid window class name: %w", err)
	}
	hInstance := CurrentModuleHandle()

	wndProcCb := windows.NewCallback(func(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
		if result, handled := proc(hwnd, msg, wParam, lParam); handled {
			return result
		}
		r, _, _ := procDefWindowProcW.Call(hwnd, uintptr(msg), wParam, lParam)
		return r
	})

	wc := wndClassExW{
		cbSize:        uint32(unsafe.Sizeof(wndClassExW{})),
		lpfnWndProc:   wndProcCb,
		hInstance:     hInstance,
		lpszClassName: classNamePtr,
	}

	atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return 0, fmt.Errorf("%w: %v", ErrClassRegistrationFailed, callErr)
	}

	const wsPopup = 0x80000000
	h, _, callErr := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(classNamePtr)),
		0,
		wsPopup,
		0, 0, 0, 0,
		0, 0, hInstance, 0,
	)
	if h == 0 {
		return 0, fmt.Errorf("CreateWindowExW failed: %w", callErr)
	}
	return h, nil
}

// DestroyWindow destroys a window created by CreateHiddenWindow.
func DestroyWindow(hwnd uintptr) {
	if hwnd == 0 {
		return
	}
	procDestroyWindow.Call(hwnd)
}

// SetTimer arms a repeating WM_TIMER on hwnd with the given id and period.
func SetTimer(hwnd uintptr, id uintptr, periodMS uint32) error {
	r, _, callErr := procSetTimer.Call(hwnd, id, uintptr(periodMS), 0)
	if r == 0 {
		return fmt.Errorf("SetTimer failed: %w", callErr)
	}
	return nil
}

// KillTimer disarms a timer previously armed with SetTimer.
func KillTimer(hwnd uintptr, id uintptr) {
	procKillTimer.Call(hwnd, id)
}

// RunMessageLoop pumps the calling thread's message queue until WM_QUIT.
// It must run on the same OS thread that created the hook and the carrier
// window (callers should runtime.LockOSThread beforehand).
func RunMessageLoop() {
	var m msgT
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// PostQuitMessage requests RunMessageLoop to return with the given exit
// code, from the same thread that owns the message loop.
func PostQuitMessage(exitCode int32) {
	procPostQuitMessage.Call(uintptr(exitCode))
}

// PostThreadQuitMessage posts WM_QUIT to an arbitrary thread ID, used by the
// shutdown path to unblock RunMessageLoop from a different goroutine/thread.
// Returns false if the thread could not be reached (stale/exited thread).
func PostThreadQuitMessage(threadID uint32) bool {
	const wmQuit = 0x0012
	r, _, _ := procPostThreadMessageW.Call(uintptr(threadID), wmQuit, 0, 0)
	return r != 0
}

// PostClose posts WM_CLOSE to hwnd; used as the fallback shutdown path when
// PostThreadQuitMessage cannot reach the dispatcher thread.
func PostClose(hwnd uintptr) bool {
	const wmClose = 0x0010
	r, _, _ := procPostMessageW.Call(hwnd, wmClose, 0, 0)
	return r != 0
}
