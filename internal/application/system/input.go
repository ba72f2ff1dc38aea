package system

import (
	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// InputState is the input snapshot for one tick
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
	Throw bool
}

// Any reports whether any control is held
func (in InputState) Any() bool {
	return in.Left || in.Right || in.Jump || in.Throw
}

// InputSystem applies player controls sampled by the caller
type InputSystem struct {
	config  *config.Tuning
	physics *PhysicsSystem
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.Tuning, physics *PhysicsSystem) *InputSystem {
	return &InputSystem{config: cfg, physics: physics}
}

// UpdatePlayer applies one movement step of player controls.
// The player stays within [0, endX].
func (s *InputSystem) UpdatePlayer(p *entity.Player, in InputState, endX float64) {
	if p.IsDead() {
		return
	}

	if in.Right && p.X < endX {
		p.X = min(p.X+p.Speed, endX)
		p.FacingLeft = false
	}
	if in.Left && p.X > 0 {
		p.X = max(p.X-p.Speed, 0)
		p.FacingLeft = true
	}

	if in.Jump {
		s.physics.Jump(p)
	}
}
