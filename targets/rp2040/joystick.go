//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"github.com/PhoneMk/treasure-hunt/core"
)

// samplePeriod paces the stick acquisition loop.
const samplePeriod = 50 * time.Millisecond

// joystick owns the two ADC channels of the stick.
type joystick struct {
	x machine.ADC
	y machine.ADC
}

func newJoystick(xPin, yPin machine.Pin) *joystick {
	machine.InitADC()
	j := &joystick{
		x: machine.ADC{Pin: xPin},
		y: machine.ADC{Pin: yPin},
	}
	j.x.Configure(machine.ADCConfig{})
	j.y.Configure(machine.ADCConfig{})
	return j
}

// sampleLoop stands in for the conversion-complete interrupt. Get
// returns 16-bit left-justified readings; the calibration constants
// live on the converter's native 12-bit scale, so shift them down.
func (j *joystick) sampleLoop(ctrl *core.Controller) {
	for {
		x := j.x.Get() >> 4
		y := j.y.Get() >> 4
		ctrl.ConversionDone(x, y)
		time.Sleep(samplePeriod)
	}
}
