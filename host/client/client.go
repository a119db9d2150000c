// Package client drives a treasure pad from the host end of the link.
//
// A Client owns an open link.Port: it serializes outgoing command
// frames and runs a reader goroutine that splits incoming bytes into
// echo lines and joystick events, handing each to a callback.
package client

import (
	"bufio"
	"fmt"
	"strings"
	"sync"

	"github.com/PhoneMk/treasure-hunt/host/link"
	"github.com/PhoneMk/treasure-hunt/protocol"
)

// EventFunc receives one pad event byte (protocol.EventUp and
// friends). It runs on the client's reader goroutine.
type EventFunc func(ev byte)

// LineFunc receives one non-event line from the pad with the
// terminator stripped, normally the echo of a command just sent. It
// runs on the client's reader goroutine.
type LineFunc func(line string)

// Client represents a connection to a treasure pad
type Client struct {
	port link.Port

	// Guards writes; reads have the reader goroutine to themselves.
	mu sync.Mutex

	onEvent EventFunc
	onLine  LineFunc

	done chan struct{}
}

// New wraps an already-open port. Either callback may be nil. The
// reader starts immediately.
func New(port link.Port, onEvent EventFunc, onLine LineFunc) *Client {
	c := &Client{
		port:    port,
		onEvent: onEvent,
		onLine:  onLine,
		done:    make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// Connect opens a serial device and wraps it
func Connect(device string, onEvent EventFunc, onLine LineFunc) (*Client, error) {
	return ConnectWithConfig(link.DefaultConfig(device), onEvent, onLine)
}

// ConnectWithConfig opens a serial device with a custom link config
func ConnectWithConfig(cfg *link.Config, onEvent EventFunc, onLine LineFunc) (*Client, error) {
	port, err := link.OpenSerial(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open link: %w", err)
	}

	// Drop whatever the pad transmitted before we attached.
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to flush link: %w", err)
	}

	return New(port, onEvent, onLine), nil
}

// SendFood asks the pad to show n as the food count
func (c *Client) SendFood(n int) error {
	return c.send(protocol.AppendFood(nil, n))
}

// SendEnergy asks the pad to show n as the energy level
func (c *Client) SendEnergy(n int) error {
	return c.send(protocol.AppendEnergy(nil, n))
}

// SendStatus asks the pad to show text as the status line
func (c *Client) SendStatus(text string) error {
	return c.send(protocol.AppendStatus(nil, text))
}

// SendRaw transmits an arbitrary line, terminating it if the caller
// did not. The pad acknowledges any line, recognized or not.
func (c *Client) SendRaw(line string) error {
	if !strings.HasSuffix(line, string(protocol.Terminator)) {
		line += string(protocol.Terminator)
	}
	return c.send([]byte(line))
}

func (c *Client) send(frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.port.Write(frame); err != nil {
		return fmt.Errorf("link write: %w", err)
	}
	return nil
}

// Done is closed once the reader has drained, normally because the
// link closed underneath it
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close closes the link and waits for the reader to stop
func (c *Client) Close() error {
	err := c.port.Close()
	<-c.done
	return err
}

func (c *Client) readLoop() {
	defer close(c.done)

	sc := bufio.NewScanner(c.port)
	sc.Split(scanPadLines)

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			// The CR LF of an event frame, or an echoed empty line.
			continue
		}
		if len(line) == 1 && protocol.IsEvent(line[0]) {
			if c.onEvent != nil {
				c.onEvent(line[0])
			}
			continue
		}
		if c.onLine != nil {
			c.onLine(line)
		}
	}
}

// scanPadLines splits on CR or LF so event frames (byte CR LF) and
// echo frames (text LF) both come out as single tokens.
func scanPadLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i, b := range data {
		if b == '\n' || b == '\r' {
			return i + 1, data[:i], nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
