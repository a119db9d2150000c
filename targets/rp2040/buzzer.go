//go:build rp2040 || rp2350

package main

import "machine"

// buzzerPeriod is the PWM period of the confirm tone in nanoseconds,
// a 2kHz beep.
const buzzerPeriod = 500000

// pwmPeripheral is an interface over PWM hardware slices.
// This abstracts over TinyGo's unexported *pwmGroup type.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// pwmBuzzer implements core.Buzzer on one PWM channel. Volume rides
// the duty cycle while the pitch stays fixed by the slice period.
type pwmBuzzer struct {
	pwm     pwmPeripheral
	channel uint8
}

func newBuzzer(pin machine.Pin) (*pwmBuzzer, error) {
	// GPIO pin N maps to slice (N >> 1) & 0x7, channel N & 1.
	pwm := pwmSlice(uint8((uint32(pin) >> 1) & 0x7))

	if err := pwm.Configure(machine.PWMConfig{Period: buzzerPeriod}); err != nil {
		return nil, err
	}
	channel, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}

	b := &pwmBuzzer{pwm: pwm, channel: channel}
	b.SetDuty(0)
	return b, nil
}

func (b *pwmBuzzer) SetDuty(percent uint8) {
	if percent > 100 {
		percent = 100
	}
	// Scale to the slice's wrap value with 64-bit math so a large Top
	// cannot overflow.
	top := uint64(b.pwm.Top())
	b.pwm.Set(b.channel, uint32(top*uint64(percent)/100))
}

// pwmSlice returns the PWM peripheral for a slice number.
// TinyGo defines PWM0-PWM7 as globals of the unexported *pwmGroup type.
func pwmSlice(sliceNum uint8) pwmPeripheral {
	switch sliceNum {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return machine.PWM0
	}
}
