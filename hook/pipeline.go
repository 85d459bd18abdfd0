// Package hook implements the Hook Pipeline: the only mutator of the Cursor
// Trace, deciding per mouse-move event whether to suppress the OS event and
// emit a corrected position. pipeline.go is OS-independent and testable
// without any real hook installed; llhook.go wires it to the real
// WH_MOUSE_LL callback.
package hook

import (
	"fmt"
	"log/slog"

	"github.com/rpdg/cursorbridge"
	"github.com/rpdg/cursorbridge/geometry"
	"github.com/rpdg/cursorbridge/topology"
)

// Event is one observed (or synthetic) mouse-move notification.
type Event struct {
	Point    geometry.Point
	Injected bool
}

// Mover issues the absolute cursor move that corrects a crossing. It is the
// only side effect the pipeline performs; production code backs it with
// winapi.SetCursorPos, tests back it with a fake.
type Mover func(x, y int32) error

// MonitorLocator resolves the handle of the monitor under a point, mirroring
// MonitorFromPoint(pt, MONITOR_DEFAULTTONULL): ok is false if pt lies
// between monitors.
type MonitorLocator func(p geometry.Point) (handle uintptr, ok bool)

// trace is the pipeline's private Cursor Trace: both fields are either
// absent (present=false) or jointly present.
type trace struct {
	present bool
	monitor topology.Monitor
	pos     geometry.Point
}

// Pipeline holds the Cursor Trace and Suppression Flag and implements the
// per-event procedure from the design. It is not safe for concurrent use —
// the single-threaded dispatcher contract is what makes that acceptable.
type Pipeline struct {
	model       *topology.Model
	locateUnder MonitorLocator
	move        Mover
	log         *slog.Logger

	trace       trace
	suppressing bool
}

// New builds a Pipeline. locateUnder and move are injected so the decision
// logic can be exercised without touching the OS.
func New(model *topology.Model, locateUnder MonitorLocator, move Mover, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{model: model, locateUnder: locateUnder, move: move, log: log}
}

// Suppressing reports whether the pipeline is currently inside a synthetic
// move it issued itself — the secondary re-entrancy guard for OS drivers
// that fail to mark the resulting callback as injected.
func (p *Pipeline) Suppressing() bool { return p.suppressing }

// HandleMouseMove runs the per-event procedure from the design and reports
// whether the caller should suppress the original OS event.
func (p *Pipeline) HandleMouseMove(ev Event) (handled bool) {
	if ev.Injected {
		return false
	}
	if p.suppressing {
		return false
	}

	curHandle, ok := p.locateUnder(ev.Point)
	if !ok {
		// Cursor is between monitors in the virtual desktop, or the query
		// failed transiently. Skip the event, leave the trace untouched.
		return false
	}
	curMonitor, found := p.model.Find(curHandle)
	if !found {
		// Topology changed between enumeration and use; the monitor under
		// the cursor is no longer one we know about.
		return false
	}

	if p.trace.present && p.trace.monitor.Handle != curMonitor.Handle {
		if mapped, ok := p.tryRemap(curMonitor, ev.Point); ok {
			if mapped != ev.Point {
				if moved, _ := p.emitSyntheticMove(mapped); moved {
					p.updateTraceAt(mapped)
					return true
				}
				// Synthetic move failed: fall through to the default
				// update-and-pass-through path below.
			}
		}
	}

	p.updateTrace(curMonitor, ev.Point)
	return false
}

// tryRemap runs exit-edge detection then percentage remap for a candidate
// crossing from the traced monitor to curMonitor.
func (p *Pipeline) tryRemap(curMonitor topology.Monitor, curPos geometry.Point) (geometry.Point, bool) {
	src := toGeoRect(p.trace.monitor.Bounds)
	hit := geometry.FindExitEdge(p.trace.pos, curPos, src)
	if hit.Edge == geometry.None {
		return geometry.Point{}, false
	}

	dst := toGeoRect(curMonitor.Bounds)
	mapped, err := geometry.Remap(src, dst, hit.Edge, hit.Along)
	if err != nil {
		p.log.Debug("crossing not adjacent", "edge", hit.Edge.String(), "error", err)
		return geometry.Point{}, false
	}
	return mapped, true
}

// emitSyntheticMove performs the suppress/move/unsuppress dance from the
// concurrency design: the flag is set immediately before the OS call and
// cleared immediately after, before this function returns, so a synchronous
// re-entrant callback observes the flag correctly and never deadlocks.
func (p *Pipeline) emitSyntheticMove(target geometry.Point) (bool, error) {
	p.suppressing = true
	err := p.move(target.X, target.Y)
	p.suppressing = false
	if err != nil {
		err = fmt.Errorf("%w: %v", cursorbridge.ErrCursorMoveFailed, err)
		p.log.Warn("synthetic cursor move failed", "target", target, "error", err)
		return false, err
	}
	return true, nil
}

// updateTraceAt re-resolves the monitor at a just-moved-to point (mirroring
// the reference implementation's re-query rather than assuming it landed on
// the monitor the remap targeted, since three-or-more collinear monitors
// can put it on an intermediate one).
func (p *Pipeline) updateTraceAt(pos geometry.Point) {
	handle, ok := p.locateUnder(pos)
	if !ok {
		p.trace = trace{}
		return
	}
	mon, found := p.model.Find(handle)
	if !found {
		p.trace = trace{}
		return
	}
	p.updateTrace(mon, pos)
}

func (p *Pipeline) updateTrace(mon topology.Monitor, pos geometry.Point) {
	p.trace = trace{present: true, monitor: mon, pos: pos}
}

// InvalidateTrace clears the Cursor Trace. Called by the Topology Refresher
// whenever the topology signature changes.
func (p *Pipeline) InvalidateTrace() {
	p.trace = trace{}
}

func toGeoRect(r topology.Rect) geometry.Rect {
	return geometry.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
