package playing

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/chickenrun/internal/application/replay"
	"github.com/younwookim/chickenrun/internal/application/scene"
	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/state"
	"github.com/younwookim/chickenrun/internal/application/system"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

type fakeSound struct {
	muted bool
	plays []service.ClipID
}

func (f *fakeSound) PlaySound(clip service.ClipID, _ float64, _ bool) {
	f.plays = append(f.plays, clip)
}

func (f *fakeSound) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

type menuScene struct{}

func (menuScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (menuScene) Draw(*ebiten.Image)                  {}
func (menuScene) OnEnter()                            {}
func (menuScene) OnExit()                             {}

func createTestOptions() Options {
	return Options{
		Tuning: config.Default(),
		Level: &config.LevelConfig{
			Name:   "test",
			EndX:   4500,
			Player: config.PointConfig{X: 1000, Y: 150},
		},
		Sound: &fakeSound{},
		Seed:  func() int64 { return 12345 },
	}
}

func newTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func step(p *Playing, n int, in system.InputState) {
	for i := 0; i < n; i++ {
		_, _ = p.apply(controls{input: in})
	}
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestPlaying_StepsSession(t *testing.T) {
	p := newTestPlaying(t, createTestOptions())

	step(p, 10, system.InputState{Right: true})

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, uint64(10), p.Session().Ticks())
	assert.Greater(t, p.Session().World().Player.X, 1000.0)
	assert.Equal(t, int64(12345), p.Session().Seed())
}

func TestPlaying_Pause(t *testing.T) {
	p := newTestPlaying(t, createTestOptions())

	_, err := p.apply(controls{pause: true})
	require.NoError(t, err)
	assert.Equal(t, state.StatePaused, p.State())

	step(p, 5, system.InputState{Right: true})
	assert.Zero(t, p.Session().Ticks(), "paused sessions do not advance")

	_, _ = p.apply(controls{pause: true})
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_Mute(t *testing.T) {
	opts := createTestOptions()
	sound := opts.Sound.(*fakeSound)
	p := newTestPlaying(t, opts)

	_, _ = p.apply(controls{mute: true})
	assert.True(t, sound.muted)
	_, _ = p.apply(controls{mute: true})
	assert.False(t, sound.muted)
}

func TestPlaying_LoseAndRestart(t *testing.T) {
	p := newTestPlaying(t, createTestOptions())
	first := p.Session()
	first.World().Player.Deplete()

	step(p, 90, system.InputState{})
	require.Equal(t, state.StateLost, p.State())
	assert.True(t, first.Ended())

	next, err := p.apply(controls{restart: true})
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.NotSame(t, first, p.Session())
	assert.Equal(t, 100.0, p.hud.health)
}

func TestPlaying_RestartFromPause(t *testing.T) {
	p := newTestPlaying(t, createTestOptions())
	first := p.Session()
	step(p, 3, system.InputState{})

	_, _ = p.apply(controls{pause: true})
	_, err := p.apply(controls{restart: true})
	require.NoError(t, err)

	assert.True(t, first.Ended())
	assert.Zero(t, p.Session().Ticks())
}

func TestPlaying_Menu(t *testing.T) {
	t.Run("quits without a menu", func(t *testing.T) {
		p := newTestPlaying(t, createTestOptions())
		_, _ = p.apply(controls{pause: true})

		_, err := p.apply(controls{menu: true})
		assert.ErrorIs(t, err, scene.ErrQuit)
	})

	t.Run("returns the menu", func(t *testing.T) {
		opts := createTestOptions()
		opts.Menu = func() scene.Scene { return menuScene{} }
		p := newTestPlaying(t, opts)
		_, _ = p.apply(controls{pause: true})

		next, err := p.apply(controls{menu: true})
		require.NoError(t, err)
		assert.Equal(t, menuScene{}, next)
	})
}

func TestPlaying_Records(t *testing.T) {
	opts := createTestOptions()
	opts.RecordPath = filepath.Join(t.TempDir(), "run.json")
	p := newTestPlaying(t, opts)

	step(p, 10, system.InputState{Right: true})
	p.OnExit()

	data, err := replay.LoadReplay(opts.RecordPath)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 10)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, "test", data.Level)
	assert.Equal(t, p.Session().ID.String(), data.Session)
	assert.True(t, data.Frames[0].R)
}

func TestHUD_Display(t *testing.T) {
	h := NewHUD(nil)
	var d service.Display = h

	d.SetHealthPercentage(40)
	d.SetCoinCount(3)
	d.SetBottleCount(2)
	d.SetBossHealthPercentage(70)

	assert.Equal(t, 40.0, h.health)
	assert.Equal(t, 3, h.coins)
	assert.Equal(t, 2, h.bottles)
	assert.Equal(t, 70.0, h.bossHealth)

	h.Reset()
	assert.Equal(t, 100.0, h.health)
	assert.Zero(t, h.coins)
}
