package system

import (
	"time"

	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// PoseSystem tracks idle time and picks the player animation
type PoseSystem struct {
	config *config.Tuning
}

// NewPoseSystem creates a new pose system
func NewPoseSystem(cfg *config.Tuning) *PoseSystem {
	return &PoseSystem{config: cfg}
}

// Update runs one pose step. now is the current simulation time.
func (s *PoseSystem) Update(p *entity.Player, in InputState, now time.Duration) {
	if p.IsDead() {
		if p.Pose != entity.PoseDead {
			p.Pose = entity.PoseDead
			p.AnimFrame = 0
		}
		return
	}

	if in.Any() {
		p.Idle = 0
	} else {
		p.Idle += s.config.Loop.PoseMs.Duration()
	}

	next := entity.PoseIdle
	switch {
	case p.IsHurt(now, s.config.Combat.HurtWindowMs.Duration()):
		next = entity.PoseHurt
	case p.IsAirborne():
		next = entity.PoseJumping
	case in.Left || in.Right:
		next = entity.PoseWalking
	case p.Idle > s.config.Player.LongIdleMs.Duration():
		next = entity.PoseLongIdle
	}

	if next != p.Pose {
		p.Pose = next
		p.AnimFrame = 0
		return
	}
	p.AnimFrame++
}
