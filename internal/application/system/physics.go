package system

import (
	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// PhysicsSystem integrates gravity and straight-line motion
type PhysicsSystem struct {
	config *config.Tuning
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.Tuning) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// GravityStep runs one gravity step for the player and every flying bottle
func (s *PhysicsSystem) GravityStep(w *entity.World) {
	if w.Player != nil {
		s.applyPlayerGravity(w.Player)
	}

	g := s.config.Physics.Gravity
	killY := s.config.Projectile.KillY
	for _, b := range w.Projectiles {
		if !b.IsActive() {
			continue
		}
		b.Y -= b.VY
		b.VY -= g
		if killY > 0 && b.Y > killY {
			b.MarkRemoved()
		}
	}
}

func (s *PhysicsSystem) applyPlayerGravity(p *entity.Player) {
	if !p.IsAirborne() && p.VY <= 0 {
		return
	}

	p.Y -= p.VY
	p.VY -= s.config.Physics.Gravity

	// landing
	if p.Y >= p.GroundY && p.VY <= 0 {
		p.Y = p.GroundY
		p.VY = 0
	}
}

// Jump launches the player if it stands on the ground and is alive
func (s *PhysicsSystem) Jump(p *entity.Player) bool {
	if p.IsDead() || p.IsAirborne() {
		return false
	}
	p.VY = s.config.Physics.JumpImpulse
	return true
}

// Bounce sends the player up after a stomp, airborne or not
func (s *PhysicsSystem) Bounce(p *entity.Player) {
	p.VY = s.config.Physics.JumpImpulse
}

// MoveStep advances walkers to the left and bottles along their throw
func (s *PhysicsSystem) MoveStep(w *entity.World) {
	for _, e := range w.Level.Enemies {
		if e.IsAlive() {
			e.X -= e.Speed
		}
	}
	for _, b := range w.Projectiles {
		if b.IsActive() {
			b.X += b.VX
		}
	}
}

// AnimateStep advances walk cycles and splash animations
func (s *PhysicsSystem) AnimateStep(w *entity.World) {
	for _, e := range w.Level.Enemies {
		if !e.Dying {
			e.AnimFrame++
		}
	}
	for _, b := range w.Projectiles {
		b.AnimFrame++
	}
}
