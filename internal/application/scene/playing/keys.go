package playing

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/chickenrun/internal/application/system"
)

// KeyMap binds player controls to keys
type KeyMap struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
	Throw []ebiten.Key
}

// DefaultKeyMap uses the arrow keys, space to jump and D to throw
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp},
		Throw: []ebiten.Key{ebiten.KeyD},
	}
}

// Read builds a snapshot from a key predicate
func (m KeyMap) Read(pressed func(ebiten.Key) bool) system.InputState {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if pressed(k) {
				return true
			}
		}
		return false
	}
	return system.InputState{
		Left:  held(m.Left),
		Right: held(m.Right),
		Jump:  held(m.Jump),
		Throw: held(m.Throw),
	}
}
