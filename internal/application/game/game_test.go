package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/chickenrun/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 720, 480, 60)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Same(t, mockInitial, g.Current())
}

func TestGame_Update_PassesFrameTime(t *testing.T) {
	tests := []struct {
		tps  int
		want float64
	}{
		{60, 1.0 / 60},
		{30, 1.0 / 30},
		{0, 1.0 / 60},
	}

	for _, tt := range tests {
		m := &mockScene{}
		g := New(m, 720, 480, tt.tps)

		assert.NoError(t, g.Update())
		assert.InDelta(t, tt.want, m.lastDT, 1e-12)
	}
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, 720, 480, 60)

	img := ebiten.NewImage(720, 480)
	g.Draw(img)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, 720, 480, 60)

	w, h := g.Layout(1440, 960)
	assert.Equal(t, 720, w)
	assert.Equal(t, 480, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	scene1.nextScene = scene2

	g := New(scene1, 720, 480, 60)

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
	assert.Equal(t, uint64(2), g.Frames())
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{}
	g := New(scene1, 720, 480, 60)

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.Update())
	}

	assert.Equal(t, 5, scene1.updateCalled)
	assert.Equal(t, 0, scene1.onExitCalled)
}

func TestGame_Quit(t *testing.T) {
	scene1 := &mockScene{updateErr: scene.ErrQuit}
	g := New(scene1, 720, 480, 60)

	err := g.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 1, scene1.onExitCalled)
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}
	g := New(scene1, 720, 480, 60)

	err := g.Update()
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, scene1.onExitCalled)
}
