package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputState_Any(t *testing.T) {
	assert.True(t, InputState{Throw: true}.Any())
	assert.False(t, InputState{}.Any())
}

func TestInputSystem_UpdatePlayer(t *testing.T) {
	tests := []struct {
		name       string
		startX     float64
		input      InputState
		wantX      float64
		wantFacing bool // FacingLeft
	}{
		{"walk right", 100, InputState{Right: true}, 106, false},
		{"walk left", 100, InputState{Left: true}, 94, true},
		{"right clamps at level end", 4497, InputState{Right: true}, 4500, false},
		{"right blocked at level end", 4500, InputState{Right: true}, 4500, false},
		{"left clamps at zero", 3, InputState{Left: true}, 0, true},
		{"left blocked at zero", 0, InputState{Left: true}, 0, false},
		{"no input", 100, InputState{}, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(createTestTuning())
			sys := NewInputSystem(f.cfg, f.physics)
			p := f.world.Player
			p.X = tt.startX

			sys.UpdatePlayer(p, tt.input, f.world.Level.EndX)

			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, tt.wantFacing, p.FacingLeft)
		})
	}
}

func TestInputSystem_PlayerNeverLeavesLevel(t *testing.T) {
	f := newFixture(createTestTuning())
	sys := NewInputSystem(f.cfg, f.physics)
	p := f.world.Player
	rng := testRNG()

	for i := 0; i < 5000; i++ {
		in := InputState{Left: rng.Intn(2) == 0, Right: rng.Intn(3) == 0}
		sys.UpdatePlayer(p, in, f.world.Level.EndX)
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, f.world.Level.EndX)
	}
}

func TestInputSystem_Jump(t *testing.T) {
	f := newFixture(createTestTuning())
	sys := NewInputSystem(f.cfg, f.physics)
	p := f.world.Player

	sys.UpdatePlayer(p, InputState{Jump: true}, 4500)
	assert.Equal(t, 30.0, p.VY)
}

func TestInputSystem_DeadPlayerIgnoresInput(t *testing.T) {
	f := newFixture(createTestTuning())
	sys := NewInputSystem(f.cfg, f.physics)
	p := f.world.Player
	p.Deplete()

	sys.UpdatePlayer(p, InputState{Right: true, Jump: true}, 4500)

	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 0.0, p.VY)
}
