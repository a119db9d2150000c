package sim

import (
	"testing"
)

// TestStickRestsCentered verifies an untouched stick samples at the
// calibration midpoint.
func TestStickRestsCentered(t *testing.T) {
	s := newStick()

	x, y := s.take()
	if x != stickMid || y != stickMid {
		t.Errorf("Expected centered sample (%d,%d), got (%d,%d)", stickMid, stickMid, x, y)
	}
}

// TestDeflectLastsOneSample verifies a key press deflects exactly one
// conversion before the stick re-centers.
func TestDeflectLastsOneSample(t *testing.T) {
	s := newStick()
	s.deflect(+stickSwing, 0)

	x, y := s.take()
	if x != stickMid+stickSwing || y != stickMid {
		t.Errorf("Expected deflected sample (%d,%d), got (%d,%d)", stickMid+stickSwing, stickMid, x, y)
	}

	x, y = s.take()
	if x != stickMid || y != stickMid {
		t.Errorf("Expected re-centered sample, got (%d,%d)", x, y)
	}
}

// TestNewerDeflectionWins verifies two presses between samples keep
// only the latest direction.
func TestNewerDeflectionWins(t *testing.T) {
	s := newStick()
	s.deflect(+stickSwing, 0)
	s.deflect(0, -stickSwing)

	x, y := s.take()
	if x != stickMid || y != stickMid-stickSwing {
		t.Errorf("Expected the later deflection, got (%d,%d)", x, y)
	}
}

// TestPressedConsumes verifies the button reads pressed once per press.
func TestPressedConsumes(t *testing.T) {
	s := newStick()

	if s.Pressed() {
		t.Error("Expected unpressed button at rest")
	}

	s.press()
	if !s.Pressed() {
		t.Error("Expected pressed after press()")
	}
	if s.Pressed() {
		t.Error("Expected press to be consumed by the first read")
	}
}
