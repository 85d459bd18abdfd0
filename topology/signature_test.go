package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func monA() Monitor {
	return Monitor{Handle: 1, Bounds: Rect{0, 0, 1920, 1080}, Primary: true, DeviceName: `\\.\DISPLAY1`}
}

func monB() Monitor {
	return Monitor{Handle: 2, Bounds: Rect{1920, 0, 3840, 1200}, Primary: false, DeviceName: `\\.\DISPLAY2`}
}

func TestSignature_InvariantUnderEnumerationOrder(t *testing.T) {
	forward := Signature([]Monitor{monA(), monB()})
	reversed := Signature([]Monitor{monB(), monA()})
	assert.Equal(t, forward, reversed, "signature must not depend on enumeration order")
}

func TestSignature_DiffersOnBoundsChange(t *testing.T) {
	a := monA()
	b := a
	b.Bounds.Right = 2560

	assert.NotEqual(t, Signature([]Monitor{a}), Signature([]Monitor{b}))
}

func TestSignature_DiffersOnPrimaryFlagChange(t *testing.T) {
	a := monA()
	b := a
	b.Primary = false

	assert.NotEqual(t, Signature([]Monitor{a}), Signature([]Monitor{b}))
}

func TestSignature_EmptySet(t *testing.T) {
	assert.Empty(t, Signature(nil))
}
