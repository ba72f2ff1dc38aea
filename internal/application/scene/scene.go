// Package scene defines the Scene interface for game screens.
//
// The title menu and the playing field each implement Scene; the game
// loop only ever talks to the current one.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to close the game normally
var ErrQuit = errors.New("quit")

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one frame of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns ErrQuit to close the window, any other error aborts the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called every time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
