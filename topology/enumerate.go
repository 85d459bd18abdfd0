package topology

import "github.com/rpdg/cursorbridge/winapi"

// EnumerateOS is the production Enumerator, backed by
// EnumDisplayMonitors/GetMonitorInfoW.
func EnumerateOS() ([]Monitor, error) {
	raw, err := winapi.EnumMonitors()
	if err != nil {
		return nil, err
	}
	monitors := make([]Monitor, len(raw))
	for i, r := range raw {
		monitors[i] = Monitor{
			Handle: r.Handle,
			Bounds: Rect{
				Left:   r.Bounds.Left,
				Top:    r.Bounds.Top,
				Right:  r.Bounds.Right,
				Bottom: r.Bounds.Bottom,
			},
			Primary:    r.Primary,
			DeviceName: r.DeviceName,
		}
	}
	return monitors, nil
}
