package cursorbridge

import "errors"

// Sentinel errors returned (possibly wrapped with %w) by the dispatcher and
// its collaborators. Callers distinguish them with errors.Is.
var (
	// ErrNoMonitors is returned at startup when EnumDisplayMonitors reports
	// zero monitors: there is no topology to correct crossings against.
	ErrNoMonitors = errors.New("cursorbridge: no monitors enumerated")

	// ErrWindowClassRefused is returned when RegisterClassExW for the hidden
	// carrier window fails.
	ErrWindowClassRefused = errors.New("cursorbridge: window class registration refused")

	// ErrCarrierWindowRefused is returned when CreateWindowExW for the
	// hidden carrier window fails.
	ErrCarrierWindowRefused = errors.New("cursorbridge: carrier window creation refused")

	// ErrTimerRefused is returned when SetTimer for the periodic topology
	// refresh tick fails.
	ErrTimerRefused = errors.New("cursorbridge: timer registration refused")

	// ErrHookRefused is returned when SetWindowsHookExW for the low-level
	// mouse hook fails, typically because the process lacks the privilege
	// to install a global hook.
	ErrHookRefused = errors.New("cursorbridge: mouse hook installation refused")

	// ErrCursorMoveFailed is returned when SetCursorPos fails while emitting
	// a corrected cursor position for a crossing.
	ErrCursorMoveFailed = errors.New("cursorbridge: synthetic cursor move failed")
)

// geometry.ErrNotAdjacent is deliberately left as a package-local sentinel
// rather than duplicated here: it only ever reaches hook, which treats any
// Remap error as a non-adjacent crossing, never the dispatcher's startup
// boundary, so there is no shared call site that benefits from hoisting it
// to the module root.
