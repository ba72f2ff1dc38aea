package state

import "github.com/younwookim/chickenrun/internal/application/service"

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateWon
	StateLost
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// IsOver reports an end screen state
func (s GameState) IsOver() bool {
	return s == StateWon || s == StateLost
}

// FromOutcome maps a session outcome to the end screen it shows
func FromOutcome(o service.Outcome) GameState {
	switch o {
	case service.OutcomeWon:
		return StateWon
	case service.OutcomeLost:
		return StateLost
	default:
		return StatePlaying
	}
}
