package core

import "testing"

func TestDirectionOf(t *testing.T) {
	cal := DefaultCalibration

	testCases := []struct {
		name     string
		x, y     uint16
		expected Direction
	}{
		{"centered", 3100, 3100, DirNeutral},
		{"right", 3200, 3100, DirRight},
		{"left", 3000, 3100, DirLeft},
		{"up", 3100, 3200, DirUp},
		{"down", 3100, 3000, DirDown},
		{"deadzone edge high x", 3150, 3100, DirNeutral},
		{"just past deadzone x", 3151, 3100, DirRight},
		{"deadzone edge low x", 3050, 3100, DirNeutral},
		{"just below deadzone x", 3049, 3100, DirLeft},
		{"deadzone edge high y", 3100, 3150, DirNeutral},
		{"just past deadzone y", 3100, 3151, DirUp},
		{"diagonal right up", 3300, 3300, DirRight},
		{"diagonal left down", 2900, 2900, DirLeft},
		{"full scale x", 4095, 3100, DirRight},
		{"zero x", 0, 3100, DirLeft},
	}

	for _, tc := range testCases {
		got := cal.DirectionOf(JoystickSample{X: tc.x, Y: tc.y})
		if got != tc.expected {
			t.Errorf("%s: DirectionOf(%d,%d) expected %d, got %d", tc.name, tc.x, tc.y, tc.expected, got)
		}
	}
}

func TestDirectionOfCustomCalibration(t *testing.T) {
	cal := Calibration{MidX: 512, MidY: 512, Deadzone: 10}

	if got := cal.DirectionOf(JoystickSample{X: 530, Y: 512}); got != DirRight {
		t.Errorf("Expected right on a 10-bit stick, got %d", got)
	}
	if got := cal.DirectionOf(JoystickSample{X: 512, Y: 490}); got != DirDown {
		t.Errorf("Expected down on a 10-bit stick, got %d", got)
	}
}

func TestConversionDoneReadsButton(t *testing.T) {
	tb := newTestBoard()
	c := NewController(tb.board())

	tb.button.pressed = true
	c.ConversionDone(3100, 3100)

	s, ok := c.sample.tryConsume()
	if !ok {
		t.Fatal("Expected a staged sample")
	}
	if !s.Button {
		t.Error("Expected the button level captured with the sample")
	}
	if s.X != 3100 || s.Y != 3100 {
		t.Errorf("Expected raw pair stored, got (%d,%d)", s.X, s.Y)
	}
}
