// Package title provides the level select menu shown at startup.
package title

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/chickenrun/internal/application/scene"
	"github.com/younwookim/chickenrun/internal/infrastructure/font"
)

var (
	colorBG       = color.RGBA{40, 30, 20, 255}
	colorText     = color.RGBA{240, 230, 210, 255}
	colorSelected = color.RGBA{255, 200, 60, 255}
	colorCursor   = color.RGBA{255, 200, 60, 80}
)

// StartFunc builds the playing scene for a level
type StartFunc func(level string) (scene.Scene, error)

// Title lists the levels and starts the chosen one
type Title struct {
	name     string
	levels   []string
	selected int
	faces    *font.Faces
	start    StartFunc

	screenW int
	screenH int
}

type controls struct {
	up, down, confirm, quit bool
}

// New creates the menu. levels must not be empty.
func New(name string, levels []string, faces *font.Faces, screenW, screenH int, start StartFunc) (*Title, error) {
	if len(levels) == 0 {
		return nil, errors.New("title: no levels")
	}
	if faces == nil {
		faces = font.Fallback()
	}
	return &Title{
		name:    name,
		levels:  levels,
		faces:   faces,
		start:   start,
		screenW: screenW,
		screenH: screenH,
	}, nil
}

// Update moves the cursor and starts the selected level
func (t *Title) Update(_ float64) (scene.Scene, error) {
	pressed := inpututil.IsKeyJustPressed
	return t.apply(controls{
		up:      pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW),
		down:    pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS),
		confirm: pressed(ebiten.KeyEnter) || pressed(ebiten.KeySpace),
		quit:    pressed(ebiten.KeyEscape) || pressed(ebiten.KeyQ),
	})
}

func (t *Title) apply(c controls) (scene.Scene, error) {
	switch {
	case c.quit:
		return nil, scene.ErrQuit
	case c.up:
		t.selected = (t.selected + len(t.levels) - 1) % len(t.levels)
	case c.down:
		t.selected = (t.selected + 1) % len(t.levels)
	case c.confirm:
		next, err := t.start(t.Selected())
		if err != nil {
			return nil, fmt.Errorf("failed to start level %s: %w", t.Selected(), err)
		}
		return next, nil
	}
	return nil, nil
}

// Selected returns the highlighted level name
func (t *Title) Selected() string {
	return t.levels[t.selected]
}

// Draw renders the menu
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	tw := text.BoundString(t.faces.Title, t.name).Dx()
	text.Draw(screen, t.name, t.faces.Title, (t.screenW-tw)/2, t.screenH/4, colorText)

	const lineH = 28
	top := t.screenH/2 - len(t.levels)*lineH/2
	for i, lvl := range t.levels {
		y := top + i*lineH
		c := colorText
		if i == t.selected {
			c = colorSelected
			vector.FillRect(screen, float32(t.screenW/2-120), float32(y-lineH+8), 240, lineH, colorCursor, false)
		}
		w := text.BoundString(t.faces.Body, lvl).Dx()
		text.Draw(screen, lvl, t.faces.Body, (t.screenW-w)/2, y, c)
	}

	hint := "Arrows move  Space jump  D throw  M mute  Esc pause"
	hw := text.BoundString(t.faces.Body, hint).Dx()
	text.Draw(screen, hint, t.faces.Body, (t.screenW-hw)/2, t.screenH-30, colorText)
}

// OnEnter is called when entering this scene
func (t *Title) OnEnter() {
	log.Printf("menu: %d levels", len(t.levels))
}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}
