package states

import "fmt"

// TurnPhase represents where the turn cycle currently stands.
type TurnPhase int

const (
	// PhaseInitializing - engine construction, level not yet live
	PhaseInitializing TurnPhase = iota

	// PhaseAwaitingInput - waiting for exactly one player intent
	PhaseAwaitingInput

	// PhaseEnemy - enemies each take one step toward the goal
	PhaseEnemy

	// PhaseTower - towers resolve their shots
	PhaseTower

	// PhaseVictory - terminal: every enemy destroyed
	PhaseVictory

	// PhaseGameOver - terminal: an enemy reached the goal
	PhaseGameOver
)

// String returns the string representation of a TurnPhase.
func (p TurnPhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseAwaitingInput:
		return "AwaitingInput"
	case PhaseEnemy:
		return "EnemyPhase"
	case PhaseTower:
		return "TowerPhase"
	case PhaseVictory:
		return "Victory"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// IsTerminal returns true once the game can no longer advance.
func (p TurnPhase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseGameOver
}

// CanReceiveIntents returns true if a player intent is accepted in this
// phase.
func (p TurnPhase) CanReceiveIntents() bool {
	return p == PhaseAwaitingInput
}

// AllowedTransitions returns the valid phases this phase can move to.
func (p TurnPhase) AllowedTransitions() []TurnPhase {
	switch p {
	case PhaseInitializing:
		return []TurnPhase{PhaseAwaitingInput}
	case PhaseAwaitingInput:
		return []TurnPhase{PhaseEnemy}
	case PhaseEnemy:
		return []TurnPhase{PhaseTower, PhaseGameOver}
	case PhaseTower:
		return []TurnPhase{PhaseAwaitingInput, PhaseVictory, PhaseGameOver}
	default:
		return []TurnPhase{}
	}
}

// CanTransitionTo checks if moving from this phase to target is allowed.
func (p TurnPhase) CanTransitionTo(target TurnPhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string back to a TurnPhase.
func ParsePhase(s string) TurnPhase {
	switch s {
	case "AwaitingInput":
		return PhaseAwaitingInput
	case "EnemyPhase":
		return PhaseEnemy
	case "TowerPhase":
		return PhaseTower
	case "Victory":
		return PhaseVictory
	case "GameOver":
		return PhaseGameOver
	default:
		return PhaseInitializing
	}
}
