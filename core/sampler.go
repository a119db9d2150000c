// Joystick sampling. The conversion callback is the producer half: it
// stores the raw axis pair, reads the button as part of the same
// logical sample and stages the result. Turning a sample into a
// direction happens later, in the dispatcher, so the callback stays
// minimal enough for interrupt context.
package core

// JoystickSample is one completed dual-channel conversion plus the
// button level read alongside it. Raw values are 12-bit.
type JoystickSample struct {
	X      uint16
	Y      uint16
	Button bool
}

// Direction is a sample collapsed onto one axis.
type Direction uint8

const (
	DirNeutral Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Calibration fixes the stick's center reading and the tolerance band
// around it that still counts as no movement.
type Calibration struct {
	MidX     uint16
	MidY     uint16
	Deadzone uint16
}

// DefaultCalibration matches the shipped stick on its 12-bit scale.
var DefaultCalibration = Calibration{
	MidX:     3100,
	MidY:     3100,
	Deadzone: 50,
}

// DirectionOf derives the direction of s. The X axis is tested before
// the Y axis and the first threshold crossed wins: diagonal input must
// report the X direction. Hosts depend on that order.
func (cal Calibration) DirectionOf(s JoystickSample) Direction {
	switch {
	case int(s.X) > int(cal.MidX)+int(cal.Deadzone):
		return DirRight
	case int(s.X) < int(cal.MidX)-int(cal.Deadzone):
		return DirLeft
	case int(s.Y) > int(cal.MidY)+int(cal.Deadzone):
		return DirUp
	case int(s.Y) < int(cal.MidY)-int(cal.Deadzone):
		return DirDown
	}
	return DirNeutral
}

// ConversionDone feeds one completed analog conversion into the
// controller. It is the sampler interrupt's entry point: it never
// blocks and never transmits. A sample staged before the previous one
// was consumed replaces it; only the newest reading matters.
func (c *Controller) ConversionDone(x, y uint16) {
	c.sample.produce(JoystickSample{
		X:      x,
		Y:      y,
		Button: c.board.Button.Pressed(),
	})
}
