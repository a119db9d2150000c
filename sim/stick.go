package sim

import (
	"sync"
	"time"

	"github.com/PhoneMk/treasure-hunt/core"
)

const (
	samplePeriod = 50 * time.Millisecond

	// Rest point and key deflection on the 12-bit scale the
	// calibration expects. The swing clears the deadzone by a wide
	// margin.
	stickMid   = 3100
	stickSwing = 600
)

// stick is the simulated joystick. A key press stages one deflected
// sample; the sampler re-centers after taking it, so each press moves
// the stick for exactly one conversion. Key autorepeat stands in for
// holding the stick over.
type stick struct {
	mu      sync.Mutex
	nextX   uint16
	nextY   uint16
	pressed bool
}

func newStick() *stick {
	return &stick{nextX: stickMid, nextY: stickMid}
}

func (s *stick) deflect(dx, dy int) {
	s.mu.Lock()
	s.nextX = uint16(stickMid + dx)
	s.nextY = uint16(stickMid + dy)
	s.mu.Unlock()
}

func (s *stick) press() {
	s.mu.Lock()
	s.pressed = true
	s.mu.Unlock()
}

// Pressed reports and consumes a pending button press. The controller
// reads it once per staged sample.
func (s *stick) Pressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pressed
	s.pressed = false
	return p
}

// take returns the staged sample and re-centers the stick.
func (s *stick) take() (x, y uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	x, y = s.nextX, s.nextY
	s.nextX, s.nextY = stickMid, stickMid
	return x, y
}

// sampleLoop plays the ADC conversion timer.
func (s *stick) sampleLoop(ctrl *core.Controller) {
	ticker := time.NewTicker(samplePeriod)
	defer ticker.Stop()

	for range ticker.C {
		x, y := s.take()
		ctrl.ConversionDone(x, y)
	}
}
