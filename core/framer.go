package core

import "github.com/PhoneMk/treasure-hunt/protocol"

// RxByte feeds one received byte into the frame assembler. It is the
// receive interrupt's entry point: call it once per byte, from one
// goroutine, and it returns without blocking or transmitting.
//
// A frame completes on the terminator or when the buffer is one byte
// short of full; the two are indistinguishable downstream. On
// completion the frame is staged for echo, the blink flag is raised,
// and a recognized command is parsed and staged with it. Food and
// status commands also raise the buzz flag. The assembly index resets
// whether or not the frame meant anything.
func (c *Controller) RxByte(b byte) {
	c.rx[c.rxLen] = b
	c.rxLen++
	if b != protocol.Terminator && c.rxLen < len(c.rx)-1 {
		return
	}

	frame := c.rx[:c.rxLen]
	c.blink.produce()

	cmd := protocol.Parse(frame)
	c.command.produce(frame, cmd)
	if cmd.Kind == protocol.KindFood || cmd.Kind == protocol.KindStatus {
		c.buzz.produce()
	}

	c.rxLen = 0
}
