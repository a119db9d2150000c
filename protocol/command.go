package protocol

// Kind discriminates what a parsed command mutates.
type Kind uint8

const (
	KindNone Kind = iota
	KindFood
	KindEnergy
	KindStatus
)

// Command is the interpretation of one completed frame. For KindStatus,
// Text aliases the frame it was parsed from; callers that keep it past
// the frame's lifetime must copy it.
type Command struct {
	Kind  Kind
	Value int
	Text  []byte
}

// Parse interprets a completed frame, terminator included. A frame
// shorter than two bytes, or one that does not begin with a known tag
// and ':', is KindNone: the pad acknowledges receipt but changes no
// state.
func Parse(frame []byte) Command {
	if len(frame) < 2 || frame[1] != ':' {
		return Command{}
	}

	payload := frame[2:]
	switch frame[0] {
	case TagFood:
		return Command{Kind: KindFood, Value: Atoi(payload)}
	case TagEnergy:
		return Command{Kind: KindEnergy, Value: Atoi(payload)}
	case TagStatus:
		// The payload is kept verbatim, terminator and all, clamped
		// to MaxStatus.
		if len(payload) > MaxStatus {
			payload = payload[:MaxStatus]
		}
		return Command{Kind: KindStatus, Text: payload}
	}

	return Command{}
}

// Atoi parses a leading decimal integer: skip whitespace, accept an
// optional sign, then digits until the first non-digit. Malformed
// input yields 0, never an error.
func Atoi(b []byte) int {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}

	negative := false
	if i < len(b) && (b[i] == '-' || b[i] == '+') {
		negative = b[i] == '-'
		i++
	}

	value := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		value = value*10 + int(b[i]-'0')
		i++
	}

	if negative {
		value = -value
	}
	return value
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
