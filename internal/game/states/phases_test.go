package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnPhase_String(t *testing.T) {
	tests := []struct {
		phase    TurnPhase
		expected string
	}{
		{PhaseInitializing, "Initializing"},
		{PhaseAwaitingInput, "AwaitingInput"},
		{PhaseEnemy, "EnemyPhase"},
		{PhaseTower, "TowerPhase"},
		{PhaseVictory, "Victory"},
		{PhaseGameOver, "GameOver"},
		{TurnPhase(999), "Unknown(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestTurnPhase_Properties(t *testing.T) {
	t.Run("IsTerminal", func(t *testing.T) {
		assert.True(t, PhaseVictory.IsTerminal())
		assert.True(t, PhaseGameOver.IsTerminal())
		assert.False(t, PhaseAwaitingInput.IsTerminal())
		assert.False(t, PhaseEnemy.IsTerminal())
		assert.False(t, PhaseTower.IsTerminal())
	})

	t.Run("CanReceiveIntents", func(t *testing.T) {
		assert.True(t, PhaseAwaitingInput.CanReceiveIntents())
		assert.False(t, PhaseInitializing.CanReceiveIntents())
		assert.False(t, PhaseEnemy.CanReceiveIntents())
		assert.False(t, PhaseTower.CanReceiveIntents())
		assert.False(t, PhaseVictory.CanReceiveIntents())
		assert.False(t, PhaseGameOver.CanReceiveIntents())
	})
}

func TestTurnPhase_Transitions(t *testing.T) {
	tests := []struct {
		from    TurnPhase
		allowed []TurnPhase
	}{
		{PhaseInitializing, []TurnPhase{PhaseAwaitingInput}},
		{PhaseAwaitingInput, []TurnPhase{PhaseEnemy}},
		{PhaseEnemy, []TurnPhase{PhaseTower, PhaseGameOver}},
		{PhaseTower, []TurnPhase{PhaseAwaitingInput, PhaseVictory, PhaseGameOver}},
		{PhaseVictory, []TurnPhase{}},
		{PhaseGameOver, []TurnPhase{}},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			allowed := tt.from.AllowedTransitions()
			assert.Equal(t, tt.allowed, allowed)

			for _, target := range allowed {
				assert.True(t, tt.from.CanTransitionTo(target))
			}
			// A phase never transitions to itself.
			assert.False(t, tt.from.CanTransitionTo(tt.from))
		})
	}
}

func TestParsePhase(t *testing.T) {
	phases := []TurnPhase{
		PhaseAwaitingInput, PhaseEnemy, PhaseTower, PhaseVictory, PhaseGameOver,
	}
	for _, p := range phases {
		assert.Equal(t, p, ParsePhase(p.String()))
	}
	assert.Equal(t, PhaseInitializing, ParsePhase("garbage"))
}
