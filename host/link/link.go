package link

import (
	"io"
)

// Port represents one end of the pad link
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial) for a real pad
// - TCP (for the desktop simulator)
// - Loopback (for testing)
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered but unread input
	Flush() error
}

// Config holds link configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (the pad runs its UART at 115200; USB CDC ignores this)
	Baud int

	// Read timeout in milliseconds. 0 blocks, which is what the
	// client's reader loop wants.
	ReadTimeout int
}

// DefaultConfig returns a default configuration for the pad
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0,
	}
}
