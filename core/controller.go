// Package core implements the pad's event-driven integration layer:
// a serial command framer, a joystick sampler and the render/transmit
// dispatcher that ties them together. Interrupt-side producers
// (RxByte, ConversionDone) hand work to the dispatcher (Tick) through
// single-slot mailboxes; nothing on that path blocks or allocates.
package core

import (
	"time"

	"github.com/PhoneMk/treasure-hunt/protocol"
)

// Timing constants for one dispatcher pass.
const (
	// BuzzHold and BlinkHold are how long the confirm outputs stay
	// driven inside a tick. Both are deliberate latency: the loop
	// stalls while the pulse is audible/visible.
	BuzzHold  = 300 * time.Millisecond
	BlinkHold = 300 * time.Millisecond

	// IdleDelay ends every tick so the pad cannot flood the link.
	IdleDelay = 200 * time.Millisecond

	// WriteTimeout bounds one outbound transmit. A link that cannot
	// take the frame in time drops it; there is no retry.
	WriteTimeout = 100 * time.Millisecond

	// BuzzDuty is the duty percentage of the confirm tone.
	BuzzDuty = 50
)

// Controller owns every piece of state shared between the interrupt
// producers and the dispatcher: the frame assembly buffer, the three
// mailboxes and the game state. Exactly one goroutine may call the
// producer methods per input source, and exactly one may call Tick.
type Controller struct {
	board Board
	cal   Calibration

	// Frame assembly, owned by RxByte.
	rx    [protocol.MaxFrame]byte
	rxLen int

	// Mailboxes into the dispatcher.
	command commandBox
	sample  sampleBox
	buzz    flag
	blink   flag

	// Dispatcher-owned state.
	state GameState
	echo  [protocol.MaxFrame]byte
	out   [3]byte
}

// NewController wires a controller to its board. The board must be
// fully initialized; the controller starts using it on the first
// producer call or Tick.
func NewController(board Board) *Controller {
	return &Controller{
		board: board,
		cal:   DefaultCalibration,
		state: defaultState(),
	}
}

// NewCalibratedController is NewController with a stick calibration
// other than the shipped one.
func NewCalibratedController(board Board, cal Calibration) *Controller {
	c := NewController(board)
	c.cal = cal
	return c
}

// State returns a copy of the current game state. The state belongs
// to the tick goroutine; call this from there (or from tests driving
// Tick directly).
func (c *Controller) State() GameState {
	return c.state
}

// Run ticks the dispatcher forever. Call it on the goroutine that owns
// the board's display and link.
func (c *Controller) Run() {
	for {
		c.Tick()
	}
}

// RenderAll paints every dashboard field from the current state.
// Targets call it once after the display comes up.
func (c *Controller) RenderAll() {
	c.render()
}

// render pushes the three fields to the display.
func (c *Controller) render() {
	c.board.Display.ShowFood(c.state.Food)
	c.board.Display.ShowEnergy(c.state.Energy)
	c.board.Display.ShowStatus(c.state.Status)
}

// send transmits one outbound event frame. Write errors are dropped
// outputs, not failures; the host sees a gap, the pad moves on.
func (c *Controller) send(ev byte) {
	frame := protocol.AppendEvent(c.out[:0], ev)
	c.board.Link.Write(frame)
}
