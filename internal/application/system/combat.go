package system

import (
	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/timer"
	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// CombatSystem resolves pickups, contact damage, stomps and bottle hits
type CombatSystem struct {
	config   *config.Tuning
	world    *entity.World
	timers   *timer.Registry
	services service.Services
	physics  *PhysicsSystem
	boss     *BossSystem
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(
	cfg *config.Tuning,
	world *entity.World,
	timers *timer.Registry,
	services service.Services,
	physics *PhysicsSystem,
	boss *BossSystem,
) *CombatSystem {
	return &CombatSystem{
		config:   cfg,
		world:    world,
		timers:   timers,
		services: services,
		physics:  physics,
		boss:     boss,
	}
}

// Update runs one resolution pass. The order is fixed: pickups, player
// against walkers, player against the boss, bottles against walkers,
// bottles against the boss, bottles reaching the floor.
func (s *CombatSystem) Update() {
	s.collectCoins()
	s.collectBottles()
	s.resolveWalkers()
	s.resolveBossContact()
	s.resolveBottleHits()
	s.resolveBossHits()
	s.resolveGroundedBottles()
}

func (s *CombatSystem) collectCoins() {
	p := s.world.Player
	for _, c := range s.world.Level.Coins {
		if c.Removed() || !IsColliding(p, c) {
			continue
		}
		c.MarkRemoved()
		p.Coins++
		s.play(service.ClipCoin)
		s.services.Display.SetCoinCount(min(p.Coins, s.config.Combat.MaxCoins))
	}
}

func (s *CombatSystem) collectBottles() {
	p := s.world.Player
	for _, b := range s.world.Level.Bottles {
		if p.Bottles >= s.config.Combat.MaxBottles {
			return
		}
		if b.Removed() || !IsNear(p, b, s.config.Combat.PickupBuffer) {
			continue
		}
		b.MarkRemoved()
		p.Bottles++
		s.play(service.ClipBottleCollect)
		s.services.Display.SetBottleCount(p.Bottles)
	}
}

// resolveWalkers handles player contact with chickens. Any stomp this tick
// suppresses contact damage from every chicken.
func (s *CombatSystem) resolveWalkers() {
	p := s.world.Player
	if p.IsDead() {
		return
	}

	var stomped, touching []*entity.Enemy
	for _, e := range s.world.Level.Enemies {
		if !e.IsAlive() || !IsColliding(p, e) {
			continue
		}
		if s.isStomp(p, e) {
			stomped = append(stomped, e)
		} else {
			touching = append(touching, e)
		}
	}

	if len(stomped) > 0 {
		for _, e := range stomped {
			s.killWalker(e)
		}
		for _, e := range s.world.Level.Enemies {
			if e.IsAlive() && s.inStompRadius(p, e) {
				s.killWalker(e)
			}
		}
		s.physics.Bounce(p)
		s.play(service.ClipChickenHurt)
		return
	}

	for range touching {
		s.HitPlayer(s.config.Combat.ContactDamage)
	}
}

// isStomp: falling, airborne, and feet above the chicken's middle plus tolerance
func (s *CombatSystem) isStomp(p *entity.Player, e *entity.Enemy) bool {
	return p.IsFalling() && p.Bottom() < e.MidY()+s.config.Combat.StompTolerance
}

func (s *CombatSystem) inStompRadius(p *entity.Player, e *entity.Enemy) bool {
	return abs(p.X-e.X) <= s.config.Combat.StompRadiusX && abs(p.Y-e.Y) <= s.config.Combat.StompRadiusY
}

func (s *CombatSystem) resolveBossContact() {
	p := s.world.Player
	b := s.world.Level.Boss
	if b == nil || b.Defeated() || p.IsDead() {
		return
	}
	if IsColliding(p, b) {
		s.HitPlayer(s.config.Combat.ContactDamage)
	}
}

func (s *CombatSystem) resolveBottleHits() {
	for _, bottle := range s.world.Projectiles {
		if !bottle.IsActive() {
			continue
		}
		for _, e := range s.world.Level.Enemies {
			if !e.IsAlive() || !IsColliding(bottle, e) {
				continue
			}
			s.shatter(bottle)
			if e.TakeDamage(s.timers.Now(), 1) {
				s.scheduleRemoval(e)
			}
			break
		}
	}
}

func (s *CombatSystem) resolveBossHits() {
	b := s.world.Level.Boss
	if b == nil {
		return
	}
	for _, bottle := range s.world.Projectiles {
		if b.Defeated() {
			return
		}
		if !bottle.IsActive() || !IsColliding(bottle, b) {
			continue
		}
		s.shatter(bottle)
		s.boss.Hit(s.config.Boss.DamagePerHit)
	}
}

func (s *CombatSystem) resolveGroundedBottles() {
	floor := s.config.Projectile.FloorY
	if floor <= 0 {
		return
	}
	for _, bottle := range s.world.Projectiles {
		if bottle.IsActive() && bottle.Y >= floor {
			bottle.Y = floor
			s.shatter(bottle)
		}
	}
}

// HitPlayer applies the standard hit procedure to the player
func (s *CombatSystem) HitPlayer(damage int) bool {
	p := s.world.Player
	if !p.Hit(s.timers.Now(), damage, s.config.Combat.HitCooldownMs.Duration()) {
		return false
	}
	s.play(service.ClipPlayerHurt)
	s.services.Display.SetHealthPercentage(p.Percentage())
	return true
}

func (s *CombatSystem) killWalker(e *entity.Enemy) {
	if e.Kill() {
		s.scheduleRemoval(e)
	}
}

func (s *CombatSystem) scheduleRemoval(e *entity.Enemy) {
	delay := s.config.Enemies[e.Kind.String()].RemovalDelayMs.Duration()
	s.timers.After(delay, timer.Owner(e.ID), e.MarkRemoved)
}

func (s *CombatSystem) shatter(b *entity.Projectile) {
	if !b.Latch() {
		return
	}
	s.play(service.ClipBottleShatter)
	s.timers.After(s.config.Projectile.RemovalDelayMs.Duration(), timer.Owner(b.ID), b.MarkRemoved)
}

func (s *CombatSystem) play(clip service.ClipID) {
	s.services.Sound.PlaySound(clip, s.config.Volume(string(clip)), false)
}
