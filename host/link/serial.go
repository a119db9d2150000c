package link

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// SerialPort wraps the tarm/serial implementation
type SerialPort struct {
	port *serial.Port
	cfg  *Config
}

// OpenSerial opens a native serial port to a pad
func OpenSerial(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &SerialPort{
		port: port,
		cfg:  cfg,
	}, nil
}

// Read reads data from the serial port
func (p *SerialPort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write writes data to the serial port
func (p *SerialPort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the serial port
func (p *SerialPort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush discards stale input, typically pad output from before the
// host attached
func (p *SerialPort) Flush() error {
	if p.port != nil {
		return p.port.Flush()
	}
	return nil
}
