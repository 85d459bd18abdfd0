package topology

import "sync"

// Enumerator queries the OS for the current set of monitors. Production
// code uses EnumerateOS (winapi-backed); tests inject a fake.
type Enumerator func() ([]Monitor, error)

// Model is the sole owner of the current monitor set. It publishes
// immutable snapshots to readers and is mutated only by Refresh, which the
// dispatcher calls exclusively from its single dispatch thread — Model
// itself holds a mutex only so a misuse from a second goroutine fails safe
// rather than racing silently.
type Model struct {
	mu        sync.Mutex
	enumerate Enumerator
	snapshot  []Monitor
	signature string
}

// NewModel builds a Model that has not yet been populated; call Refresh
// once at startup before using Snapshot/Find.
func NewModel(enumerate Enumerator) *Model {
	return &Model{enumerate: enumerate}
}

// Snapshot returns the current monitor set. The returned slice must be
// treated as read-only by callers.
func (m *Model) Snapshot() []Monitor {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

// Signature returns the canonical string for the current snapshot.
func (m *Model) Signature() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signature
}

// Find performs a linear lookup for handle in the current snapshot.
// Monitor counts in practice are small (<=~8), so linear search is fine.
func (m *Model) Find(handle uintptr) (Monitor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mon := range m.snapshot {
		if mon.Handle == handle {
			return mon, true
		}
	}
	return Monitor{}, false
}

// Refresh enumerates the OS's current monitor set and, if the signature
// differs from the stored one, atomically replaces the snapshot. It reports
// whether the snapshot actually changed, so callers (the Topology
// Refresher) can invalidate dependent state only when needed.
func (m *Model) Refresh() (changed bool, err error) {
	fresh, err := m.enumerate()
	if err != nil {
		return false, err
	}
	sig := Signature(fresh)

	m.mu.Lock()
	defer m.mu.Unlock()
	if sig == m.signature {
		return false, nil
	}
	m.snapshot = fresh
	m.signature = sig
	return true, nil
}

// Count returns the number of monitors in the current snapshot.
func (m *Model) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snapshot)
}
