// Package geometry implements exit-edge detection and percentage remapping
// between adjacent monitor rectangles — the numerically sensitive core of
// the cursor-crossing engine. Every function here is a pure function of its
// inputs so it can be exercised without any OS dependency.
package geometry

import "math"

// Edge identifies which side of a rectangle a motion segment exits through.
type Edge int

const (
	// None means the segment does not exit the rectangle.
	None Edge = iota
	Left
	Right
	Top
	Bottom
)

func (e Edge) String() string {
	switch e {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return "None"
	}
}

// tolerance bounds the segment parameter t against floating-point rounding.
const tolerance = 1e-9

// Point is an integer virtual-desktop pixel coordinate.
type Point struct {
	X, Y int32
}

// Rect is a closed-interval axis-aligned rectangle.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Hit describes where a segment exits a rectangle.
type Hit struct {
	Edge  Edge
	T     float64 // segment parameter in [0,1] at the crossing
	Along float64 // intersection coordinate on the crossed edge (y for Left/Right, x for Top/Bottom)
}

// FindExitEdge determines the edge of r through which the segment p0->p1
// first leaves r. p0 is assumed inside or on the boundary of r; p1 outside.
// Returns Hit{Edge: None} if the segment does not exit r.
//
// For each edge, the line-vs-line intersection parameter t is computed and
// accepted only if it lies within [0,1] (tolerance ε) and the intersection's
// other coordinate lies within the edge's extent. Ties within ε are broken
// by the motion's dominant axis: |dx|>=|dy| favors a horizontal edge
// (Left/Right), otherwise a vertical edge (Top/Bottom) wins. A t≈0 hit is
// only accepted if the motion points outward across that edge, so a start
// point sitting exactly on the boundary is not reported as an exit.
func FindExitEdge(p0, p1 Point, r Rect) Hit {
	dx := float64(p1.X) - float64(p0.X)
	dy := float64(p1.Y) - float64(p0.Y)

	best := Hit{Edge: None, T: math.Inf(1)}

	consider := func(e Edge, t, along float64) {
		if t < -tolerance || t > 1.0+tolerance {
			return
		}
		if t < tolerance {
			outward := (e == Left && dx < 0) ||
				(e == Right && dx > 0) ||
				(e == Top && dy < 0) ||
				(e == Bottom && dy > 0)
			if !outward {
				return
			}
		}
		if t < best.T-tolerance {
			best = Hit{Edge: e, T: t, Along: along}
			return
		}
		if math.Abs(t-best.T) < tolerance {
			horizontal := e == Left || e == Right
			bestHorizontal := best.Edge == Left || best.Edge == Right
			dominant := math.Abs(dx) >= math.Abs(dy)
			if horizontal != bestHorizontal {
				if (horizontal && dominant) || (!horizontal && !dominant) {
					best = Hit{Edge: e, T: t, Along: along}
				}
			}
		}
	}

	if dx != 0 {
		if t := (float64(r.Right) - float64(p0.X)) / dx; true {
			y := float64(p0.Y) + t*dy
			if y >= float64(r.Top)-tolerance && y <= float64(r.Bottom)+tolerance {
				consider(Right, t, y)
			}
		}
		if t := (float64(r.Left) - float64(p0.X)) / dx; true {
			y := float64(p0.Y) + t*dy
			if y >= float64(r.Top)-tolerance && y <= float64(r.Bottom)+tolerance {
				consider(Left, t, y)
			}
		}
	}
	if dy != 0 {
		if t := (float64(r.Bottom) - float64(p0.Y)) / dy; true {
			x := float64(p0.X) + t*dx
			if x >= float64(r.Left)-tolerance && x <= float64(r.Right)+tolerance {
				consider(Bottom, t, x)
			}
		}
		if t := (float64(r.Top) - float64(p0.Y)) / dy; true {
			x := float64(p0.X) + t*dx
			if x >= float64(r.Left)-tolerance && x <= float64(r.Right)+tolerance {
				consider(Top, t, x)
			}
		}
	}

	if best.Edge == None {
		return Hit{Edge: None}
	}
	return best
}
