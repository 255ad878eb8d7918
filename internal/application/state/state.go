package state

import "github.com/younwookim/bossrush/internal/domain/entity"

// GameState represents the screen the player is looking at
type GameState int

const (
	StateReady GameState = iota
	StatePlaying
	StatePaused
	StateVictory
	StateDefeat
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateVictory:
		return "Victory"
	case StateDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// For derives the screen state from an encounter outcome and its pause flag
func For(outcome entity.Outcome, paused bool) GameState {
	switch outcome {
	case entity.OutcomeVictory:
		return StateVictory
	case entity.OutcomeDefeat:
		return StateDefeat
	case entity.OutcomeInProgress:
		if paused {
			return StatePaused
		}
		return StatePlaying
	default:
		return StateReady
	}
}

// Terminal returns true on the result screens
func (s GameState) Terminal() bool {
	return s == StateVictory || s == StateDefeat
}
