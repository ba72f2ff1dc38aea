package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/younwookim/chickenrun/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Decode reads replay data and checks it can be played
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	if data.Level == "" {
		return nil, fmt.Errorf("replay has no level")
	}
	return &data, nil
}

// GetInput returns the input for the current tick and advances.
// Reports false once every frame was played.
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the recorded level name
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
