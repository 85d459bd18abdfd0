package topology

import (
	"fmt"
	"sort"
	"strings"
)

// Signature produces a canonical string for a set of monitors, invariant
// under enumeration order. Two snapshots compare equal iff their rectangles,
// primary flags, and device names match as multisets.
func Signature(monitors []Monitor) string {
	sorted := make([]Monitor, len(monitors))
	copy(sorted, monitors)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.DeviceName != b.DeviceName {
			return a.DeviceName < b.DeviceName
		}
		if a.Bounds.Left != b.Bounds.Left {
			return a.Bounds.Left < b.Bounds.Left
		}
		return a.Bounds.Top < b.Bounds.Top
	})

	var sb strings.Builder
	for _, m := range sorted {
		primary := 0
		if m.Primary {
			primary = 1
		}
		fmt.Fprintf(&sb, "%d,%d,%d,%d,%d;%s;", m.Bounds.Left, m.Bounds.Top, m.Bounds.Right, m.Bounds.Bottom, primary, m.DeviceName)
	}
	return sb.String()
}
