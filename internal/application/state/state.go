// Package state defines the engine's coarse state machine value.
package state

// GameState represents the current state of the game.
//
// Game over is tracked separately by the engine and can only be set while
// the state is StateRunning.
type GameState int

const (
	StateNotStarted GameState = iota
	StateRunning
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
