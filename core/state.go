package core

import "github.com/PhoneMk/treasure-hunt/protocol"

// GameState is the pad's only persisted application state. It is
// mutated exclusively by the dispatcher when it consumes a command and
// read only by the render step; it does not survive a power cycle.
type GameState struct {
	Food   int
	Energy int
	Status string
}

// Power-up defaults, matching what the dashboard paints before the
// first command arrives.
func defaultState() GameState {
	return GameState{
		Food:   0,
		Energy: 100,
		Status: "Ready",
	}
}

// apply folds one staged command into the state. KindNone frames were
// acknowledged on receipt and change nothing here.
func (g *GameState) apply(cmd staged) {
	switch cmd.kind {
	case protocol.KindFood:
		g.Food = cmd.value
	case protocol.KindEnergy:
		g.Energy = cmd.value
	case protocol.KindStatus:
		g.Status = cmd.text
	}
}
