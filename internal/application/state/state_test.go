package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateNotStarted, "NotStarted"},
		{StateRunning, "Running"},
		{StatePaused, "Paused"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Zero value must be the initial state
	var zero GameState
	assert.Equal(t, StateNotStarted, zero)
	assert.Equal(t, GameState(1), StateRunning)
	assert.Equal(t, GameState(2), StatePaused)
}
