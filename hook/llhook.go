package hook

import (
	"log/slog"

	"github.com/rpdg/cursorbridge/geometry"
	"github.com/rpdg/cursorbridge/topology"
	"github.com/rpdg/cursorbridge/winapi"
)

// InstalledHook owns the live WH_MOUSE_LL registration and the Pipeline it
// feeds.
type InstalledHook struct {
	pipeline *Pipeline
	raw      *winapi.MouseHook
}

// Install builds a Pipeline wired to real OS primitives and registers the
// low-level mouse hook. The returned InstalledHook must be uninstalled
// before the dispatcher's Run returns.
func Install(model *topology.Model, log *slog.Logger) (*InstalledHook, error) {
	pipeline := New(model, locateUnderOS, winapi.SetCursorPos, log)

	raw, err := winapi.InstallMouseHook(func(_ int32, _ uintptr, ms *winapi.MSLLHOOKSTRUCT) bool {
		ev := Event{
			Point:    geometry.Point{X: ms.Pt.X, Y: ms.Pt.Y},
			Injected: ms.Flags&(winapi.LLMHFInjected|winapi.LLMHFLowerILInjected) != 0,
		}
		return pipeline.HandleMouseMove(ev)
	})
	if err != nil {
		return nil, err
	}

	return &InstalledHook{pipeline: pipeline, raw: raw}, nil
}

// Uninstall removes the OS hook registration.
func (h *InstalledHook) Uninstall() {
	if h == nil {
		return
	}
	h.raw.Uninstall()
}

// InvalidateTrace forwards to the wrapped Pipeline; called by the Topology
// Refresher when the topology signature changes.
func (h *InstalledHook) InvalidateTrace() {
	if h == nil {
		return
	}
	h.pipeline.InvalidateTrace()
}

func locateUnderOS(p geometry.Point) (uintptr, bool) {
	handle := winapi.MonitorFromPoint(winapi.Point{X: p.X, Y: p.Y})
	if handle == 0 {
		return 0, false
	}
	return handle, true
}
