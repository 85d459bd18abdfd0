package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindExitEdge_Cardinal(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000}

	cases := []struct {
		name   string
		p0, p1 Point
		want   Edge
	}{
		{"exit right", Point{500, 500}, Point{1100, 500}, Right},
		{"exit left", Point{500, 500}, Point{-100, 500}, Left},
		{"exit bottom", Point{500, 500}, Point{500, 1100}, Bottom},
		{"exit top", Point{500, 500}, Point{500, -100}, Top},
		{"no exit, stays inside", Point{500, 500}, Point{600, 600}, None},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindExitEdge(tc.p0, tc.p1, r)
			assert.Equal(t, tc.want, got.Edge)
		})
	}
}

func TestFindExitEdge_CornerTieBreaksOnDominantAxis(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000}

	// |dx| == |dy|: exits exactly at the corner, dominant-axis rule (|dx|>=|dy|)
	// favors the horizontal edge.
	got := FindExitEdge(Point{500, 500}, Point{1600, 1600}, r)
	assert.Equal(t, Right, got.Edge)
}

func TestFindExitEdge_OnlyOneCandidateNearCorner(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000}

	// |dy| > |dx|: the segment crosses Bottom strictly before Right, no tie.
	got := FindExitEdge(Point{500, 500}, Point{1500, 1600}, r)
	assert.Equal(t, Bottom, got.Edge)
}

func TestFindExitEdge_StartOnBoundaryRequiresOutwardMotion(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000}

	// Starting exactly on the right edge, moving further right is an exit.
	outward := FindExitEdge(Point{1000, 500}, Point{1100, 500}, r)
	assert.Equal(t, Right, outward.Edge)

	// Starting exactly on the right edge, moving inward is not an exit
	// through that edge.
	inward := FindExitEdge(Point{1000, 500}, Point{400, 500}, r)
	assert.NotEqual(t, Right, inward.Edge)
}

func TestFindExitEdge_ZeroMotion(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 1000}
	got := FindExitEdge(Point{500, 500}, Point{500, 500}, r)
	assert.Equal(t, None, got.Edge)
}
