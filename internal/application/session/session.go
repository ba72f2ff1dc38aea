// Package session owns one play-through: the world, its timers and the
// systems that advance it one fixed tick at a time.
package session

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/system"
	"github.com/younwookim/chickenrun/internal/application/timer"
	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// Session is a single game from start to Won or Lost.
// It is not safe for concurrent use; Step runs on the game loop goroutine.
type Session struct {
	ID uuid.UUID

	config   *config.Tuning
	level    *config.LevelConfig
	world    *entity.World
	timers   *timer.Registry
	services service.Services
	base     service.Services
	seed     int64

	input   *system.InputSystem
	physics *system.PhysicsSystem
	pose    *system.PoseSystem
	combat  *system.CombatSystem
	throw   *system.ThrowSystem
	boss    *system.BossSystem

	tick    time.Duration
	move    timer.Cadence
	gravity timer.Cadence
	poseCad timer.Cadence
	anim    timer.Cadence
	ticks   uint64

	finishing bool
	outcome   service.Outcome
	ended     bool
}

// New builds a fresh world from the level and wires the systems.
// seed makes walker speeds and boss jumps reproducible.
func New(cfg *config.Tuning, level *config.LevelConfig, services service.Services, seed int64) (*Session, error) {
	rng := rand.New(rand.NewSource(seed))

	lvl, err := system.LoadLevel(cfg, level, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build level: %w", err)
	}

	world := entity.NewWorld(lvl)
	world.Player = system.NewPlayer(cfg, level, world.NextID())

	base := services
	services = services.Guarded()
	timers := timer.NewRegistry()
	physics := system.NewPhysicsSystem(cfg)
	boss := system.NewBossSystem(cfg, world, timers, services, rng)

	s := &Session{
		ID:       uuid.New(),
		config:   cfg,
		level:    level,
		world:    world,
		timers:   timers,
		services: services,
		base:     base,
		seed:     seed,

		input:   system.NewInputSystem(cfg, physics),
		physics: physics,
		pose:    system.NewPoseSystem(cfg),
		combat:  system.NewCombatSystem(cfg, world, timers, services, physics, boss),
		throw:   system.NewThrowSystem(cfg, world, timers, services),
		boss:    boss,

		tick:    cfg.Loop.Tick(),
		move:    timer.NewCadence(cfg.Loop.MoveInterval()),
		gravity: timer.NewCadence(cfg.Loop.GravityMs.Duration()),
		poseCad: timer.NewCadence(cfg.Loop.PoseMs.Duration()),
		anim:    timer.NewCadence(cfg.Loop.AnimationMs.Duration()),
	}

	p := world.Player
	services.Display.SetHealthPercentage(p.Percentage())
	services.Display.SetCoinCount(p.Coins)
	services.Display.SetBottleCount(p.Bottles)
	if lvl.Boss != nil {
		services.Display.SetBossHealthPercentage(lvl.Boss.Percentage())
	}

	log.Printf("session %s: level %q started (seed %d)", s.ID, lvl.Name, seed)
	return s, nil
}

// Restart returns a new session on the same level with the same
// collaborators. The current session is ended first.
func (s *Session) Restart(seed int64) (*Session, error) {
	s.End()
	return New(s.config, s.level, s.base, seed)
}

// Step advances the simulation by one tick with the input sampled for it.
// Order: timers, player controls and movement, gravity, pose, animation,
// boss, combat, throwing, end-of-game check, removal sweep.
func (s *Session) Step(in system.InputState) {
	if s.ended {
		return
	}
	s.ticks++

	s.timers.Advance(s.timers.Now() + s.tick)
	if s.ended {
		return
	}

	if s.finishing {
		in = system.InputState{}
	}

	w := s.world
	for n := s.move.Advance(s.tick); n > 0; n-- {
		s.input.UpdatePlayer(w.Player, in, w.Level.EndX)
		s.physics.MoveStep(w)
	}
	for n := s.gravity.Advance(s.tick); n > 0; n-- {
		s.physics.GravityStep(w)
	}
	for n := s.poseCad.Advance(s.tick); n > 0; n-- {
		s.pose.Update(w.Player, in, s.timers.Now())
	}
	for n := s.anim.Advance(s.tick); n > 0; n-- {
		s.physics.AnimateStep(w)
	}

	s.boss.Update(s.tick)

	if !s.finishing {
		s.combat.Update()
		s.throw.Update(in)
	}

	s.checkEnd()
	w.Sweep()
}

// checkEnd runs once per tick after all resolution. A boss dying on the
// same tick as the player wins the game.
func (s *Session) checkEnd() {
	if s.finishing {
		return
	}

	if s.boss.CheckDeath() {
		s.finish(service.OutcomeWon, s.config.Boss.Death.SettleMs.Duration())
		return
	}

	if p := s.world.Player; p.IsDead() {
		p.Pose = entity.PoseDead
		p.AnimFrame = 0
		s.services.Sound.PlaySound(service.ClipPlayerDead, s.config.Volume(string(service.ClipPlayerDead)), false)
		s.finish(service.OutcomeLost, s.config.Player.DeathDelayMs.Duration())
	}
}

func (s *Session) finish(outcome service.Outcome, delay time.Duration) {
	s.finishing = true
	s.outcome = outcome
	s.timers.After(delay, timer.NoOwner, func() {
		s.end(outcome)
	})
}

func (s *Session) end(outcome service.Outcome) {
	if s.ended {
		return
	}
	s.ended = true
	cancelled := s.timers.CancelAll()
	log.Printf("session %s: %s after %d ticks (%d timers cancelled)", s.ID, outcome, s.ticks, cancelled)
	s.services.Lifecycle.OnGameEnded(outcome)
}

// End stops the session without reporting an outcome. Every pending
// timer is cancelled. Safe to call more than once.
func (s *Session) End() {
	if s.ended {
		return
	}
	s.ended = true
	cancelled := s.timers.CancelAll()
	log.Printf("session %s: stopped after %d ticks (%d timers cancelled)", s.ID, s.ticks, cancelled)
}

// World returns the simulated world
func (s *Session) World() *entity.World {
	return s.world
}

// Now returns the simulation time
func (s *Session) Now() time.Duration {
	return s.timers.Now()
}

// Ticks returns how many ticks were stepped
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Seed returns the seed the session was built with
func (s *Session) Seed() int64 {
	return s.seed
}

// LevelName returns the name of the level being played
func (s *Session) LevelName() string {
	return s.world.Level.Name
}

// PendingTimers returns the number of scheduled timers
func (s *Session) PendingTimers() int {
	return s.timers.Pending()
}

// Finishing reports that the game is decided and waits for its end delay
func (s *Session) Finishing() bool {
	return s.finishing
}

// Ended reports whether the session stopped
func (s *Session) Ended() bool {
	return s.ended
}

// Outcome returns the decided outcome, or OutcomeNone while playing
func (s *Session) Outcome() service.Outcome {
	return s.outcome
}

// TickDuration returns the length of one tick
func (s *Session) TickDuration() time.Duration {
	return s.tick
}
