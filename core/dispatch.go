package core

import "github.com/PhoneMk/treasure-hunt/protocol"

// directionEvent maps a non-neutral Direction to its event byte.
var directionEvent = [...]byte{
	DirUp:    protocol.EventUp,
	DirDown:  protocol.EventDown,
	DirLeft:  protocol.EventLeft,
	DirRight: protocol.EventRight,
}

// Tick runs one dispatcher pass. Each flag is drained at most once,
// always in the same order: command, buzz, blink, sample. A flag
// raised during the pass is acted on no later than the next pass. The
// pass always ends with the idle delay, flags or not.
func (c *Controller) Tick() {
	if n, cmd, ok := c.command.tryConsume(c.echo[:]); ok {
		c.board.Link.Write(c.echo[:n])
		c.state.apply(cmd)
		c.render()
	}

	// The pulse branches clear their flag only after the hold, so a
	// pulse requested while one is already sounding is absorbed, not
	// replayed.
	if c.buzz.raised() {
		c.board.Buzzer.SetDuty(BuzzDuty)
		c.board.Clock.Sleep(BuzzHold)
		c.board.Buzzer.SetDuty(0)
		c.buzz.clear()
	}

	if c.blink.raised() {
		c.board.Lamp.Set(true)
		c.board.Clock.Sleep(BlinkHold)
		c.board.Lamp.Set(false)
		c.blink.clear()
	}

	if s, ok := c.sample.tryConsume(); ok {
		if dir := c.cal.DirectionOf(s); dir != DirNeutral {
			c.send(directionEvent[dir])
		}
		if s.Button {
			c.send(protocol.EventButton)
		}
	}

	c.board.Clock.Sleep(IdleDelay)
}
