package system

import (
	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/timer"
	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// ThrowSystem spawns bottles from the player's stock
type ThrowSystem struct {
	config   *config.Tuning
	world    *entity.World
	timers   *timer.Registry
	services service.Services
}

// NewThrowSystem creates a new throw system
func NewThrowSystem(cfg *config.Tuning, world *entity.World, timers *timer.Registry, services service.Services) *ThrowSystem {
	return &ThrowSystem{config: cfg, world: world, timers: timers, services: services}
}

// Update throws a bottle when allowed and returns it, or nil.
// Throwing needs a bottle, an expired cooldown and the player facing right.
func (s *ThrowSystem) Update(in InputState) *entity.Projectile {
	p := s.world.Player
	if !in.Throw || !p.CanThrow || p.Bottles <= 0 || p.FacingLeft || p.IsDead() {
		return nil
	}

	pc := s.config.Projectile
	bottle := entity.NewBottle(
		s.world.NextID(),
		p.X+pc.SpawnOffsetX,
		p.Y+pc.SpawnOffsetY,
		ShapeOf(pc.Shape),
		pc.SpeedX,
		pc.LaunchSpeedY,
	)
	s.world.Projectiles = append(s.world.Projectiles, bottle)

	p.Bottles--
	p.Idle = 0
	p.CanThrow = false
	s.timers.After(pc.CooldownMs.Duration(), timer.Owner(p.ID), func() {
		p.CanThrow = true
	})

	s.services.Sound.PlaySound(service.ClipBottleThrow, s.config.Volume(string(service.ClipBottleThrow)), false)
	s.services.Display.SetBottleCount(p.Bottles)
	return bottle
}
