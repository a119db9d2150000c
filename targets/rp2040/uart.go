//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"
	"time"

	"github.com/PhoneMk/treasure-hunt/core"
)

var errTxTimeout = errors.New("uart: transmit timed out")

// uartLink adapts the hardware UART to core.Link. The UART paces
// writes by its FIFO; a frame that cannot drain within WriteTimeout is
// abandoned where it stands and the controller moves on.
type uartLink struct {
	uart *machine.UART
}

func (l *uartLink) Write(p []byte) (int, error) {
	deadline := time.Now().Add(core.WriteTimeout)
	for i := 0; i < len(p); i++ {
		if time.Now().After(deadline) {
			return i, errTxTimeout
		}
		if err := l.uart.WriteByte(p[i]); err != nil {
			return i, err
		}
	}
	return len(p), nil
}
