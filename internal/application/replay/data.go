// Package replay records per-tick player input and plays it back.
// A session built with the recorded seed and level reproduces the run.
package replay

import "github.com/younwookim/chickenrun/internal/application/system"

// Version of the replay file format
const Version = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Tick number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	T bool `json:"t,omitempty"` // Throw
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	Session   string       `json:"session,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FrameOf converts the input sampled for tick f
func FrameOf(f int, in system.InputState) FrameInput {
	return FrameInput{F: f, L: in.Left, R: in.Right, J: in.Jump, T: in.Throw}
}

// Input converts the frame back to an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{Left: fi.L, Right: fi.R, Jump: fi.J, Throw: fi.T}
}
