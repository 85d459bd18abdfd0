// Package refresher implements the Topology Refresher: it reacts to display
// change notifications and a periodic tick, and after the dispatcher's
// initial population at startup is the only thing that calls Model.Refresh.
//
// Both triggers are delivered synchronously from the dispatcher's single
// message-loop thread (WM_SETTINGCHANGE/WM_DISPLAYCHANGE and WM_TIMER are
// both ordinary window messages), so Refresher itself does no goroutine or
// ticker management: a refresh can never run concurrently with a hook
// callback, matching the single-threaded cooperative scheduling model.
package refresher

import (
	"log/slog"
	"time"
)

// DefaultInterval is the periodic safety-net tick: the OS notification is
// not reliably delivered in every multi-display configuration (docking
// hot-plug, remote-desktop transitions), so this bounds the latency of
// picking up a topology change even when the notification is lost. The
// signature-based dedup in Model.Refresh makes a no-op tick free.
const DefaultInterval = 30 * time.Second

// TopologyModel is the subset of *topology.Model the refresher needs.
type TopologyModel interface {
	Refresh() (changed bool, err error)
	Count() int
}

// TraceInvalidator is notified whenever a refresh actually changes the
// topology, so dependent state (the hook pipeline's Cursor Trace) can be
// invalidated per the data-model invariants.
type TraceInvalidator interface {
	InvalidateTrace()
}

// Refresher drives Model.Refresh from the two triggers described in the
// design; it holds no goroutine or timer of its own — the dispatcher owns
// both the OS timer and the carrier window that deliver them.
type Refresher struct {
	model TopologyModel
	trace TraceInvalidator
	log   *slog.Logger
}

// New builds a Refresher.
func New(model TopologyModel, trace TraceInvalidator, log *slog.Logger) *Refresher {
	if log == nil {
		log = slog.Default()
	}
	return &Refresher{model: model, trace: trace, log: log}
}

// OnTick handles the periodic safety-net timer firing.
func (r *Refresher) OnTick() { r.refresh("tick") }

// OnDisplayChangeNotification handles WM_DISPLAYCHANGE/WM_SETTINGCHANGE
// delivered to the carrier window.
func (r *Refresher) OnDisplayChangeNotification() { r.refresh("display-change notification") }

func (r *Refresher) refresh(trigger string) {
	changed, err := r.model.Refresh()
	if err != nil {
		r.log.Warn("topology refresh failed", "trigger", trigger, "error", err)
		return
	}
	if !changed {
		return
	}
	r.trace.InvalidateTrace()
	r.log.Info("topology refreshed", "trigger", trigger, "monitors", r.model.Count())
}
