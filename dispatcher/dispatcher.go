// Package dispatcher wires the Topology Model, Hook Pipeline and Topology
// Refresher to the single Windows message-loop thread that WH_MOUSE_LL and
// the hidden carrier window both require, and implements the two-tier
// shutdown request.
package dispatcher

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/rpdg/cursorbridge"
	"github.com/rpdg/cursorbridge/hook"
	"github.com/rpdg/cursorbridge/refresher"
	"github.com/rpdg/cursorbridge/topology"
	"github.com/rpdg/cursorbridge/winapi"
)

const (
	className       = "CursorBridgeCarrierWindow"
	timerID         = 1
	wmTimer         = 0x0113
	wmDisplayChange = 0x007E
	wmSettingChange = 0x001A
	wmClose         = 0x0010
)

// Dispatcher owns the carrier window, the timer, the installed hook and the
// topology model, and runs the blocking message loop on the calling
// goroutine. Run locks that goroutine to its OS thread
// (runtime.LockOSThread) for its whole duration, since every Windows handle
// it creates is thread-affine.
type Dispatcher struct {
	log *slog.Logger

	model     *topology.Model
	refresh   *refresher.Refresher
	installed *hook.InstalledHook

	// hwnd and threadID are published by Run (on the dispatcher thread) and
	// read by RequestShutdown (typically from a signal-handling goroutine),
	// so they're the one piece of state in this package that isn't
	// single-threaded.
	hwnd     atomic.Uintptr
	threadID atomic.Uint32
}

// New builds a Dispatcher. It performs no OS calls beyond model enumeration;
// Run does the rest, on the thread that will also pump messages.
func New(log *slog.Logger) (*Dispatcher, error) {
	if log == nil {
		log = slog.Default()
	}

	model := topology.NewModel(topology.EnumerateOS)
	if _, err := model.Refresh(); err != nil {
		return nil, fmt.Errorf("initial topology enumeration: %w", err)
	}
	if model.Count() == 0 {
		return nil, cursorbridge.ErrNoMonitors
	}

	return &Dispatcher{
		log:   log,
		model: model,
	}, nil
}

// Run performs the full startup sequence, blocks pumping messages until a
// shutdown is requested, and tears down every OS resource it created before
// returning. It locks the calling goroutine to its OS thread until it
// returns.
func (d *Dispatcher) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d.threadID.Store(winapi.CurrentThreadID())

	installedHook, err := hook.Install(d.model, d.log)
	if err != nil {
		return fmt.Errorf("%w: %v", cursorbridge.ErrHookRefused, err)
	}
	d.installed = installedHook
	defer d.installed.Uninstall()

	d.refresh = refresher.New(d.model, d.installed, d.log)

	hwnd, err := winapi.CreateHiddenWindow(className, d.windowProc)
	if err != nil {
		if errors.Is(err, winapi.ErrClassRegistrationFailed) {
			return fmt.Errorf("%w: %v", cursorbridge.ErrWindowClassRefused, err)
		}
		return fmt.Errorf("%w: %v", cursorbridge.ErrCarrierWindowRefused, err)
	}
	d.hwnd.Store(hwnd)
	defer winapi.DestroyWindow(hwnd)

	if err := winapi.SetTimer(hwnd, timerID, uint32(refresher.DefaultInterval.Milliseconds())); err != nil {
		return fmt.Errorf("%w: %v", cursorbridge.ErrTimerRefused, err)
	}
	defer winapi.KillTimer(hwnd, timerID)

	d.log.Info("cursorbridge running", "monitors", d.model.Count())
	winapi.RunMessageLoop()
	d.log.Info("cursorbridge stopped")
	return nil
}

// RequestShutdown asks the dispatcher's message loop to exit. It is safe to
// call from any goroutine, including a signal handler, and implements the
// two-tier fallback: post WM_QUIT directly to the dispatcher's thread, and
// if that thread cannot be reached, fall back to posting WM_CLOSE to the
// carrier window, whose window procedure answers it by posting WM_QUIT.
func (d *Dispatcher) RequestShutdown() {
	if tid := d.threadID.Load(); tid != 0 && winapi.PostThreadQuitMessage(tid) {
		return
	}
	if hwnd := d.hwnd.Load(); hwnd != 0 {
		winapi.PostClose(hwnd)
	}
}

func (d *Dispatcher) windowProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	switch msg {
	case wmTimer:
		d.refresh.OnTick()
		return 0, true
	case wmDisplayChange, wmSettingChange:
		d.refresh.OnDisplayChangeNotification()
		return 0, true
	case wmClose:
		winapi.PostQuitMessage(0)
		return 0, true
	}
	return 0, false
}
