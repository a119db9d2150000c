//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"github.com/PhoneMk/treasure-hunt/core"
)

// Pad wiring. Defaults fit a Pico: joystick on the first two ADC
// channels, display on SPI0, buzzer on PWM slice 7, stick button on a
// pulled-up GPIO.
const linkBaud = 115200

var (
	pinLinkTX = machine.UART0_TX_PIN
	pinLinkRX = machine.UART0_RX_PIN

	pinStickX = machine.ADC0
	pinStickY = machine.ADC1
	pinButton = machine.GPIO22
	pinBuzzer = machine.GPIO15
	pinLamp   = machine.LED

	pinDisplaySCK = machine.GPIO18
	pinDisplaySDO = machine.GPIO19
	pinDisplaySDI = machine.GPIO16
	pinDisplayCS  = machine.GPIO17
	pinDisplayDC  = machine.GPIO20
	pinDisplayRST = machine.GPIO21
)

func main() {
	// Clear any watchdog state carried across a reset before anything
	// else runs.
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0}); err != nil {
		fatal("watchdog")
	}

	if err := machine.UART0.Configure(machine.UARTConfig{
		BaudRate: linkBaud,
		TX:       pinLinkTX,
		RX:       pinLinkRX,
	}); err != nil {
		fatal("uart")
	}

	display, err := newDashboard()
	if err != nil {
		fatal("display")
	}

	buzzer, err := newBuzzer(pinBuzzer)
	if err != nil {
		fatal("buzzer")
	}

	stick := newJoystick(pinStickX, pinStickY)

	ctrl := core.NewController(core.Board{
		Link:    &uartLink{uart: machine.UART0},
		Display: display,
		Buzzer:  buzzer,
		Lamp:    newLamp(pinLamp),
		Button:  newButton(pinButton),
		Clock:   core.SystemClock{},
	})

	display.drawChrome()
	ctrl.RenderAll()

	go uartReaderLoop(ctrl)
	go stick.sampleLoop(ctrl)

	// Keep ticking even if one pass panics; there is nothing above
	// this loop to restart the firmware.
	for {
		tickLoop(ctrl)
	}
}

func tickLoop(ctrl *core.Controller) {
	defer func() {
		if r := recover(); r != nil {
			time.Sleep(100 * time.Millisecond)
		}
	}()
	ctrl.Run()
}

// uartReaderLoop stands in for the receive interrupt: one byte at a
// time into the framer, and reception is immediately re-armed by
// coming back around for the next byte.
func uartReaderLoop(ctrl *core.Controller) {
	defer func() {
		if r := recover(); r != nil {
			// Restart the reader; a silent link is the one failure
			// the pad cannot tolerate.
			time.Sleep(100 * time.Millisecond)
			go uartReaderLoop(ctrl)
		}
	}()

	uart := machine.UART0
	for {
		if uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err == nil {
				ctrl.RxByte(b)
			}
			continue
		}
		time.Sleep(500 * time.Microsecond)
	}
}

// fatal halts the firmware after a peripheral failed to come up.
// There is no supervisor to report to, so flash the lamp and stay put.
func fatal(what string) {
	println("init failed:", what)
	led := pinLamp
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(400 * time.Millisecond)
	}
}
