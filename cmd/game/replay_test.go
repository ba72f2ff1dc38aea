package main

import (
	"io/fs"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/chickenrun/internal/application/replay"
	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/system"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

func embeddedLoader(t *testing.T) *config.Loader {
	t.Helper()
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)
	return config.NewFSLoader(fsys, "configs")
}

// record builds a replay of n ticks of random input, biased to the right
func record(seed int64, level string, n int) *replay.ReplayData {
	rng := rand.New(rand.NewSource(seed))
	r := replay.NewRecorder(seed, level, "")
	for i := 0; i < n; i++ {
		r.RecordFrame(system.InputState{
			Left:  rng.Intn(6) == 0,
			Right: rng.Intn(3) != 0,
			Jump:  rng.Intn(10) == 0,
			Throw: rng.Intn(5) == 0,
		})
	}
	data := r.Data()
	return &data
}

func TestEmbeddedConfigs(t *testing.T) {
	loader := embeddedLoader(t)

	levels, err := loader.Levels()
	require.NoError(t, err)
	assert.Equal(t, []string{"pepe", "practice"}, levels)

	for _, lvl := range levels {
		_, err := loader.LoadAll(lvl)
		assert.NoError(t, err, lvl)
	}
}

func TestRunReplay_Deterministic(t *testing.T) {
	loader := embeddedLoader(t)

	for _, level := range []string{"practice", "pepe"} {
		t.Run(level, func(t *testing.T) {
			data := record(42, level, 3000)

			first, err := runReplay(loader, data)
			require.NoError(t, err)
			second, err := runReplay(loader, data)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.GreaterOrEqual(t, first.Energy, 0)
			assert.LessOrEqual(t, first.Ticks, uint64(3000+settleTicks))
		})
	}
}

func TestRunReplay_IdleSurvivesPractice(t *testing.T) {
	loader := embeddedLoader(t)
	data := replay.ReplayData{Version: replay.Version, Seed: 1, Level: "practice", Frames: make([]replay.FrameInput, 60)}

	res, err := runReplay(loader, &data)
	require.NoError(t, err)

	assert.Equal(t, uint64(60), res.Ticks)
	assert.Equal(t, service.OutcomeNone, res.Outcome)
	assert.Equal(t, 100, res.Energy)
	assert.Contains(t, res.String(), "level=practice")
}

func TestRunReplay_UnknownLevel(t *testing.T) {
	data := replay.ReplayData{Version: replay.Version, Level: "nowhere"}

	_, err := runReplay(embeddedLoader(t), &data)
	assert.Error(t, err)
}
