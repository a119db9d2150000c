package core

import (
	"io"
	"time"
)

// Board is the set of peripheral endpoints a controller drives. A
// target binds it to real hardware, the simulator to a terminal, tests
// to fakes. The controller owns the board for the life of Run; nothing
// else may write to these endpoints while it does.
type Board struct {
	Link    Link
	Display Display
	Buzzer  Buzzer
	Lamp    Lamp
	Button  Button
	Clock   Clock
}

// Link carries bytes to the host. Implementations must bound each
// write to WriteTimeout; a write that cannot complete in time is
// dropped. The controller never retries a failed write.
type Link interface {
	io.Writer
}

// Display renders the three dashboard fields. Implementations draw
// synchronously; the controller calls them only from Tick.
type Display interface {
	ShowFood(n int)
	ShowEnergy(n int)
	ShowStatus(s string)
}

// Buzzer drives the confirm tone. Duty is a percentage, 0 silences.
type Buzzer interface {
	SetDuty(percent uint8)
}

// Lamp is the receive-confirm indicator.
type Lamp interface {
	Set(on bool)
}

// Button reports the debounced, polarity-corrected state of the stick
// button: true means pressed.
type Button interface {
	Pressed() bool
}

// Clock supplies the controller's fixed holds and pacing. Targets use
// the real clock; tests substitute one that only records.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock is the Clock targets and the simulator use.
type SystemClock struct{}

func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
