package replay

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/chickenrun/internal/application/system"
)

func TestFrameInput_Input(t *testing.T) {
	in := system.InputState{Right: true, Throw: true}

	fi := FrameOf(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder(42, "pepe", "abc")
	r.RecordFrame(system.InputState{Right: true})
	r.RecordFrame(system.InputState{Jump: true})

	r.Stop()
	r.RecordFrame(system.InputState{Left: true})

	assert.False(t, r.IsRecording())
	require.Equal(t, 2, r.FrameCount())
	data := r.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, "pepe", data.Level)
	assert.Equal(t, "abc", data.Session)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].J)
}

func TestRecorder_WriteEmpty(t *testing.T) {
	r := NewRecorder(1, "pepe", "")

	err := r.Write(&bytes.Buffer{})
	assert.EqualError(t, err, "no frames to save")
}

func TestRecorder_RoundTrip(t *testing.T) {
	r := NewRecorder(99, "practice", "")
	inputs := []system.InputState{
		{}, {Right: true}, {Right: true, Jump: true}, {Throw: true}, {Left: true},
	}
	for _, in := range inputs {
		r.RecordFrame(in)
	}

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	assert.NotContains(t, buf.String(), `"l": false`, "false flags are omitted")

	data, err := Decode(&buf)
	require.NoError(t, err)

	rp := NewReplayer(*data)
	assert.Equal(t, int64(99), rp.Seed())
	assert.Equal(t, "practice", rp.Level())
	assert.Equal(t, len(inputs), rp.TotalFrames())

	for i, want := range inputs {
		got, ok := rp.GetInput()
		require.True(t, ok, "frame %d", i)
		assert.Equal(t, want, got)
	}
	_, ok := rp.GetInput()
	assert.False(t, ok)

	rp.Reset()
	assert.Zero(t, rp.CurrentFrame())
}

func TestSaveAndLoadReplay(t *testing.T) {
	r := NewRecorder(5, "pepe", "")
	r.RecordFrame(system.InputState{Right: true})
	path := filepath.Join(t.TempDir(), "run.json")

	require.NoError(t, r.Save(path))
	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, r.Data().Frames, data.Frames)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"garbage", "{", "failed to decode replay"},
		{"old version", `{"version":"1.0","level":"pepe"}`, `unsupported replay version "1.0"`},
		{"no level", `{"version":"2.0"}`, "replay has no level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
