package core

import (
	"bytes"
	"testing"

	"github.com/PhoneMk/treasure-hunt/protocol"
)

func TestFlagLifecycle(t *testing.T) {
	var f flag

	if f.raised() {
		t.Error("Expected a fresh flag to be lowered")
	}
	if f.tryConsume() {
		t.Error("Expected nothing to consume from a lowered flag")
	}

	f.produce()
	if !f.raised() {
		t.Error("Expected the flag raised after produce")
	}
	if !f.tryConsume() {
		t.Error("Expected tryConsume to report the raised flag")
	}
	if f.raised() {
		t.Error("Expected tryConsume to lower the flag")
	}
}

func TestFlagProduceIsIdempotent(t *testing.T) {
	var f flag

	f.produce()
	f.produce()

	if !f.tryConsume() {
		t.Error("Expected one consume after two produces")
	}
	if f.tryConsume() {
		t.Error("Expected the second consume to find nothing")
	}
}

func TestCommandBoxRoundTrip(t *testing.T) {
	var box commandBox

	frame := []byte("S:dig\n")
	box.produce(frame, protocol.Parse(frame))

	var echo [protocol.MaxFrame]byte
	n, cmd, ok := box.tryConsume(echo[:])
	if !ok {
		t.Fatal("Expected a staged command")
	}
	if !bytes.Equal(echo[:n], frame) {
		t.Errorf("Expected echo %q, got %q", frame, echo[:n])
	}
	if cmd.kind != protocol.KindStatus || cmd.text != "dig\n" {
		t.Errorf("Expected staged status dig, got %+v", cmd)
	}

	if _, _, ok := box.tryConsume(echo[:]); ok {
		t.Error("Expected the box empty after consumption")
	}
}

func TestCommandBoxTextIsACopy(t *testing.T) {
	var box commandBox

	frame := []byte("S:gold\n")
	box.produce(frame, protocol.Parse(frame))
	frame[2] = 'b'

	var echo [protocol.MaxFrame]byte
	_, cmd, _ := box.tryConsume(echo[:])
	if cmd.text != "gold\n" {
		t.Errorf("Expected the staged text decoupled from the frame, got %q", cmd.text)
	}
}

func TestCommandBoxOverwrite(t *testing.T) {
	var box commandBox

	first := []byte("F:1\n")
	second := []byte("F:2\n")
	box.produce(first, protocol.Parse(first))
	box.produce(second, protocol.Parse(second))

	var echo [protocol.MaxFrame]byte
	n, cmd, ok := box.tryConsume(echo[:])
	if !ok || !bytes.Equal(echo[:n], second) {
		t.Errorf("Expected the newest frame staged, got %q", echo[:n])
	}
	if cmd.value != 2 {
		t.Errorf("Expected the newest value staged, got %d", cmd.value)
	}
}

func TestSampleBoxLastValueWins(t *testing.T) {
	var box sampleBox

	box.produce(JoystickSample{X: 1})
	box.produce(JoystickSample{X: 2, Button: true})

	s, ok := box.tryConsume()
	if !ok {
		t.Fatal("Expected a staged sample")
	}
	if s.X != 2 || !s.Button {
		t.Errorf("Expected the newest sample, got %+v", s)
	}
	if _, ok := box.tryConsume(); ok {
		t.Error("Expected the box empty after consumption")
	}
}
