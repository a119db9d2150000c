//go:build rp2040 || rp2350

package main

import "machine"

// gpioLamp drives the receive-confirm indicator.
type gpioLamp struct {
	pin machine.Pin
}

func newLamp(pin machine.Pin) *gpioLamp {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return &gpioLamp{pin: pin}
}

func (l *gpioLamp) Set(on bool) {
	if on {
		l.pin.High()
	} else {
		l.pin.Low()
	}
}

// gpioButton reads the stick's push switch. The switch shorts to
// ground against the internal pull-up, so pressed reads logic low.
type gpioButton struct {
	pin machine.Pin
}

func newButton(pin machine.Pin) *gpioButton {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &gpioButton{pin: pin}
}

func (b *gpioButton) Pressed() bool {
	return !b.pin.Get()
}
