package states

import "fmt"

// TurnPhase identifies whose turn it is. There is no terminal phase: a
// finished match simply stops advancing.
type TurnPhase int

const (
	PhasePlayer0Active TurnPhase = iota
	PhasePlayer1Active
)

// String returns the string representation of a TurnPhase
func (p TurnPhase) String() string {
	switch p {
	case PhasePlayer0Active:
		return "Player0Active"
	case PhasePlayer1Active:
		return "Player1Active"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// PlayerID returns the active player of the phase.
func (p TurnPhase) PlayerID() int {
	return int(p)
}

// Next returns the phase that follows at end of turn.
func (p TurnPhase) Next() TurnPhase {
	if p == PhasePlayer0Active {
		return PhasePlayer1Active
	}
	return PhasePlayer0Active
}

// CanTransitionTo reports whether the turn may pass from p to target.
// Only the alternation between the two players is allowed.
func (p TurnPhase) CanTransitionTo(target TurnPhase) bool {
	return p.IsValid() && target == p.Next()
}

// IsValid reports whether p is one of the declared phases.
func (p TurnPhase) IsValid() bool {
	return p == PhasePlayer0Active || p == PhasePlayer1Active
}
