package protocol

import "strconv"

// AppendEvent appends one outbound event frame to dst.
func AppendEvent(dst []byte, ev byte) []byte {
	return append(dst, ev, '\r', '\n')
}

// IsEvent reports whether b is one of the pad's event bytes.
func IsEvent(b byte) bool {
	switch b {
	case EventUp, EventDown, EventLeft, EventRight, EventButton:
		return true
	}
	return false
}

// EventName returns a readable name for an event byte, for host-side
// consumers that label events rather than forward raw bytes.
func EventName(ev byte) string {
	switch ev {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventButton:
		return "button"
	}
	return "unknown"
}

// AppendFood appends a set-food command frame to dst.
func AppendFood(dst []byte, n int) []byte {
	dst = append(dst, TagFood, ':')
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, Terminator)
}

// AppendEnergy appends a set-energy command frame to dst.
func AppendEnergy(dst []byte, n int) []byte {
	dst = append(dst, TagEnergy, ':')
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, Terminator)
}

// AppendStatus appends a set-status command frame to dst. Text beyond
// MaxStatus is dropped so the pad never sees an oversized payload.
func AppendStatus(dst []byte, text string) []byte {
	if len(text) > MaxStatus {
		text = text[:MaxStatus]
	}
	dst = append(dst, TagStatus, ':')
	dst = append(dst, text...)
	return append(dst, Terminator)
}
