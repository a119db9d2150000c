// Single-slot mailboxes linking interrupt-side producers to the tick
// consumer. Each mailbox has exactly one producer and one consumer:
// the producer finishes writing the payload before raising the flag,
// the consumer finishes reading before lowering it. A payload staged
// while the previous one is still unconsumed silently replaces it;
// there is no backpressure anywhere on this path.
package core

import (
	"sync/atomic"

	"github.com/PhoneMk/treasure-hunt/protocol"
)

// flag is the bare signal mailbox. The atomic store/load pair is what
// orders the payload write ahead of the consumer's read.
type flag struct {
	v uint32
}

func (f *flag) produce() { atomic.StoreUint32(&f.v, 1) }

func (f *flag) raised() bool { return atomic.LoadUint32(&f.v) != 0 }

func (f *flag) clear() { atomic.StoreUint32(&f.v, 0) }

// tryConsume lowers a raised flag and reports whether it was raised.
// Use it only for flags without a payload; payload mailboxes must read
// before clearing.
func (f *flag) tryConsume() bool {
	return atomic.SwapUint32(&f.v, 0) != 0
}

// commandBox stages one completed frame for the dispatcher: the
// verbatim bytes to echo plus the parsed mutation, if any.
type commandBox struct {
	ready flag

	echo  [protocol.MaxFrame]byte
	echoN int

	kind  protocol.Kind
	value int
	text  [protocol.MaxStatus]byte
	textN int
}

// staged is a consumed commandBox payload. Text is a copy, safe to
// keep.
type staged struct {
	kind  protocol.Kind
	value int
	text  string
}

func (b *commandBox) produce(frame []byte, cmd protocol.Command) {
	b.echoN = copy(b.echo[:], frame)
	b.kind = cmd.Kind
	b.value = cmd.Value
	b.textN = copy(b.text[:], cmd.Text)
	b.ready.produce()
}

// tryConsume copies the staged frame into echo and returns the parsed
// command. The flag is lowered only after both copies are done.
func (b *commandBox) tryConsume(echo []byte) (int, staged, bool) {
	if !b.ready.raised() {
		return 0, staged{}, false
	}
	n := copy(echo, b.echo[:b.echoN])
	cmd := staged{
		kind:  b.kind,
		value: b.value,
		text:  string(b.text[:b.textN]),
	}
	b.ready.clear()
	return n, cmd, true
}

// sampleBox stages the most recent joystick reading. Last value wins;
// no history is kept.
type sampleBox struct {
	ready flag
	s     JoystickSample
}

func (b *sampleBox) produce(s JoystickSample) {
	b.s = s
	b.ready.produce()
}

func (b *sampleBox) tryConsume() (JoystickSample, bool) {
	if !b.ready.raised() {
		return JoystickSample{}, false
	}
	s := b.s
	b.ready.clear()
	return s, true
}
