// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/chickenrun/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  uint64
}

// New creates a new Game with the given initial scene, stepping it at
// tps frames per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene returning scene.ErrQuit ends the run cleanly.
func (g *Game) Update() error {
	g.frames++
	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		log.Printf("game: quit after %d frames", g.frames)
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the scene being shown
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns how many updates ran
func (g *Game) Frames() uint64 {
	return g.frames
}
