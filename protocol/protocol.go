// Package protocol implements the serial line protocol between the pad and the host
package protocol

// Version represents the treasure-hunt pad firmware version
const Version = "1.0.0"

// Protocol constants
const (
	MaxFrame   = 100 // Inbound command buffer capacity; a frame completes at MaxFrame-1 bytes even without a terminator
	MaxStatus  = 50  // Upper bound on a status command's text payload
	Terminator = '\n'
)

// Command tags. A recognized frame starts with a tag byte followed by ':'.
const (
	TagFood   = 'F'
	TagEnergy = 'E'
	TagStatus = 'S'
)

// Event bytes the pad sends to the host. Each event goes out as the
// byte followed by CR LF.
const (
	EventUp     = 'U'
	EventDown   = 'D'
	EventLeft   = 'L'
	EventRight  = 'R'
	EventButton = 'B'
)
