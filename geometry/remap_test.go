package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemap_PreservesPercentageAlongSharedEdge(t *testing.T) {
	// Source monitor 1000x800 on the left, destination monitor 1000x1200 on
	// the right, sharing the vertical edge at x=1000.
	src := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 800}
	dst := Rect{Left: 1000, Top: 0, Right: 2000, Bottom: 1200}

	// Crossing at 50% down the source edge (y=400).
	p, err := Remap(src, dst, Right, 400)
	require.NoError(t, err)
	assert.Equal(t, dst.Left+1, p.X)
	assert.EqualValues(t, 600, p.Y) // 50% of 1200
}

func TestRemap_ClampsPastEdgeEndsIntoDestinationInterior(t *testing.T) {
	src := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 800}
	dst := Rect{Left: 1000, Top: 0, Right: 2000, Bottom: 1200}

	p, err := Remap(src, dst, Right, 0)
	require.NoError(t, err)
	assert.Equal(t, dst.Top+1, p.Y)

	p, err = Remap(src, dst, Right, 800)
	require.NoError(t, err)
	assert.Equal(t, dst.Bottom-2, p.Y)
}

func TestRemap_InsetOneOrTwoPixelsFromMirrorEdge(t *testing.T) {
	src := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 800}
	dst := Rect{Left: 1000, Top: 0, Right: 2000, Bottom: 1200}

	right, err := Remap(src, dst, Right, 400)
	require.NoError(t, err)
	assert.Equal(t, dst.Left+1, right.X)

	dst2 := Rect{Left: -1000, Top: 0, Right: 0, Bottom: 1200}
	left, err := Remap(src, dst2, Left, 400)
	require.NoError(t, err)
	assert.Equal(t, dst2.Right-2, left.X)
}

func TestRemap_NotAdjacentWhenNoOverlap(t *testing.T) {
	src := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 100}
	dst := Rect{Left: 1000, Top: 500, Right: 2000, Bottom: 700}

	_, err := Remap(src, dst, Right, 50)
	assert.True(t, errors.Is(err, ErrNotAdjacent))
}

func TestRemap_FullSourceEdgeUsedEvenWithPartialOverlap(t *testing.T) {
	// dst only overlaps the bottom half of src's edge, but the percentage
	// domain is still src's full edge, per the validity-gate-only rule.
	src := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 800}
	dst := Rect{Left: 1000, Top: 400, Right: 2000, Bottom: 1200}

	p, err := Remap(src, dst, Right, 0)
	require.NoError(t, err)
	// 0% of src's edge maps to 0% of dst's edge (dst.Top), clamped inward.
	assert.Equal(t, dst.Top+1, p.Y)
}

// TestRemap_RoundTripLaw exercises the named round-trip invariant: crossing
// from A to B at percentage p along the shared edge, then immediately
// crossing back from B to A at the same angle, lands within one pixel of the
// original position on A. The two exact endpoints (0% and 100%) are excluded
// deliberately: each remap insets its result 1-2 pixels from the mirror edge
// by design, and a round trip through both endpoints stacks both insets, so
// the one-pixel guarantee only holds in the interior of the edge.
func TestRemap_RoundTripLaw(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Right: 1000, Bottom: 800}
	b := Rect{Left: 1000, Top: 0, Right: 2000, Bottom: 1300}

	for _, h := range []float64{40, 80, 200, 296, 400, 504, 600, 720, 760} {
		into, err := Remap(a, b, Right, h)
		require.NoError(t, err)

		back, err := Remap(b, a, Left, float64(into.Y))
		require.NoError(t, err)

		assert.InDelta(t, h, float64(back.Y), 1.0,
			"round trip at y=%.0f on A drifted beyond one pixel", h)
	}
}
