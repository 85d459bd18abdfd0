package winapi

import (
	"fmt"
	"unsafe"
)

// SetCursorPos moves the system cursor to absolute virtual-desktop
// coordinates. It is the only primitive the hook pipeline uses to emit a
// corrected position.
func SetCursorPos(x, y int32) error {
	r, _, _ := procSetCursorPos.Call(uintptr(x), uintptr(y))
	if r == 0 {
		return fmt.Errorf("SetCursorPos(%d,%d) failed", x, y)
	}
	return nil
}

// GetCursorPos returns the current absolute cursor position.
func GetCursorPos() (Point, error) {
	var pt Point
	r, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return Point{}, fmt.Errorf("GetCursorPos failed")
	}
	return pt, nil
}
