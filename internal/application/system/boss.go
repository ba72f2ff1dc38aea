package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/timer"
	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// BossSystem drives the end boss state machine.
//
//	Dormant -> Alert -> Walking <-> {Attacking, JumpAttacking, Hurt} -> Dead
//
// Update is called once per session tick; the machine itself steps on
// its own cadence and measures every phase with the boss's StateTime.
type BossSystem struct {
	config   *config.Tuning
	world    *entity.World
	timers   *timer.Registry
	services service.Services
	rng      *rand.Rand

	step timer.Cadence
	poll timer.Cadence

	earlyArmed bool
}

// NewBossSystem creates a new boss system
func NewBossSystem(cfg *config.Tuning, world *entity.World, timers *timer.Registry, services service.Services, rng *rand.Rand) *BossSystem {
	return &BossSystem{
		config:   cfg,
		world:    world,
		timers:   timers,
		services: services,
		rng:      rng,
		step:     timer.NewCadence(cfg.Loop.BossStepMs.Duration()),
		poll:     timer.NewCadence(cfg.Loop.BossPollMs.Duration()),
	}
}

// Boss returns the boss of the level, or nil
func (s *BossSystem) Boss() *entity.Boss {
	return s.world.Level.Boss
}

// Update advances the machine by dt of simulation time
func (s *BossSystem) Update(dt time.Duration) {
	b := s.Boss()
	if b == nil {
		return
	}
	for n := s.poll.Advance(dt); n > 0; n-- {
		s.checkContact(b)
	}
	for n := s.step.Advance(dt); n > 0; n-- {
		s.stepOnce(b)
	}
}

func (s *BossSystem) stepOnce(b *entity.Boss) {
	bc := &s.config.Boss
	b.StateTime += s.step.Interval()

	switch b.State {
	case entity.BossAlert:
		b.AnimFrame = frameAt(b.StateTime, bc.Activation.Alert)
		if b.StateTime >= bc.Activation.Alert.Total().Duration() {
			s.startWalking(b)
		}
	case entity.BossWalking, entity.BossJumpAttacking:
		s.walk(b)
	case entity.BossAttacking:
		frame := s.attackFrame(b.Aggression)
		b.AnimFrame = int(b.StateTime / frame)
		if b.StateTime >= time.Duration(bc.Attack.Frames)*frame {
			s.finishAttack(b)
		}
	case entity.BossHurt:
		b.AnimFrame = frameAt(b.StateTime, bc.Hurt)
		if b.StateTime >= bc.Hurt.Total().Duration() {
			s.startWalking(b)
		}
	case entity.BossDead:
		b.AnimFrame = frameAt(b.StateTime, bc.Death)
	}
}

// checkContact wakes the boss up as the player approaches
func (s *BossSystem) checkContact(b *entity.Boss) {
	if b.State != entity.BossDormant && b.State != entity.BossAlert {
		return
	}
	px := s.world.Player.X

	if b.State == entity.BossDormant && px >= s.world.Level.AlertX {
		s.startAlert(b)
	}

	if !s.earlyArmed && px >= s.world.Level.EarlyContactX {
		s.earlyArmed = true
		delay := s.config.Boss.Activation.EarlyContactDelayMs.Duration()
		s.timers.After(delay, timer.Owner(b.ID), func() {
			if b.State == entity.BossDormant || b.State == entity.BossAlert {
				s.startWalking(b)
			}
		})
	}
}

func (s *BossSystem) startAlert(b *entity.Boss) {
	b.Enter(entity.BossAlert)
	if !b.AlertPlayed {
		b.AlertPlayed = true
		s.play(service.ClipBossAlert)
	}
}

func (s *BossSystem) startWalking(b *entity.Boss) {
	b.Enter(entity.BossWalking)
	b.HadFirstContact = true
}

func (s *BossSystem) walk(b *entity.Boss) {
	now := s.timers.Now()
	b.Aggression = s.aggression(b.Energy())
	dist := abs(b.X - s.world.Player.X)

	if now < b.RecoverUntil {
		b.Speed = s.recoverySpeed(b.Aggression)
	} else {
		b.Speed = s.walkSpeed(b, dist)
	}
	b.X -= b.Speed

	if b.IsJumping() {
		s.jumpStep(b)
	}

	if s.shouldJump(b, dist) {
		s.startJump(b)
		return
	}
	if s.shouldAttack(b, dist) {
		s.startAttack(b)
		return
	}
	if b.State == entity.BossWalking {
		b.AnimFrame++
	}
}

// aggression maps remaining energy to 1..3
func (s *BossSystem) aggression(energy int) int {
	ac := s.config.Boss.Aggression
	switch {
	case energy <= ac.HighEnergy:
		return 3
	case energy <= ac.MidEnergy:
		return 2
	default:
		return 1
	}
}

func (s *BossSystem) walkSpeed(b *entity.Boss, dist float64) float64 {
	wc := s.config.Boss.Walk
	speed := wc.BaseSpeed + float64(b.Aggression)*wc.SpeedPerAggression
	if dist < wc.NearDistance {
		speed += wc.NearBonus
	}
	if b.Energy() < wc.WoundedEnergy {
		speed += wc.WoundedBonus
	}
	if b.Energy() < wc.CriticalEnergy {
		speed += wc.CriticalBonus
	}
	return speed
}

func (s *BossSystem) recoverySpeed(aggression int) float64 {
	ac := s.config.Boss.Attack
	return ac.RecoverySpeed + float64(aggression)*ac.RecoveryPerAggression
}

func (s *BossSystem) attackFrame(aggression int) time.Duration {
	ac := s.config.Boss.Attack
	return max(ac.FrameMs.Duration()-time.Duration(aggression)*ac.FramePerAggressionMs.Duration(), ac.MinFrameMs.Duration())
}

func (s *BossSystem) attackCooldown(aggression int) time.Duration {
	ac := s.config.Boss.Attack
	return max(ac.CooldownMs.Duration()-time.Duration(aggression)*ac.CooldownPerAggressionMs.Duration(), ac.MinCooldownMs.Duration())
}

func (s *BossSystem) shouldAttack(b *entity.Boss, dist float64) bool {
	ac := s.config.Boss.Attack
	if b.State != entity.BossWalking {
		return false
	}
	if dist >= ac.BaseRange+float64(b.Aggression)*ac.RangePerAggression {
		return false
	}
	return b.LastAttack.Elapsed(s.timers.Now(), s.attackCooldown(b.Aggression))
}

func (s *BossSystem) startAttack(b *entity.Boss) {
	b.Enter(entity.BossAttacking)
	b.Speed = 0
	b.LastAttack.Mark(s.timers.Now())
}

func (s *BossSystem) finishAttack(b *entity.Boss) {
	b.Enter(entity.BossWalking)
	b.Speed = s.recoverySpeed(b.Aggression)
	b.RecoverUntil = s.timers.Now() + s.config.Boss.Attack.RecoveryMs.Duration()
}

func (s *BossSystem) shouldJump(b *entity.Boss, dist float64) bool {
	jc := s.config.Boss.Jump
	if b.State != entity.BossWalking {
		return false
	}
	if dist <= jc.MinDistance || dist >= jc.MaxDistance {
		return false
	}
	if !b.LastJump.Elapsed(s.timers.Now(), jc.CooldownMs.Duration()) {
		return false
	}
	return s.rng.Float64() < float64(b.Aggression)*jc.ChancePerAggression
}

func (s *BossSystem) startJump(b *entity.Boss) {
	jc := s.config.Boss.Jump
	a := float64(b.Aggression)

	dir := sign(s.world.Player.X - b.X)
	if dir == 0 {
		dir = -1
	}

	b.Enter(entity.BossJumpAttacking)
	b.VY = jc.Impulse + a*jc.ImpulsePerAggression
	b.JumpVX = dir * (jc.Speed + a*jc.SpeedPerAggression)
	b.LastJump.Mark(s.timers.Now())
	s.play(service.ClipBossAlert)
}

func (s *BossSystem) jumpStep(b *entity.Boss) {
	b.Y -= b.VY
	b.VY -= s.config.Boss.Jump.Gravity
	b.X += b.JumpVX

	landed := b.Y >= b.GroundY && b.VY < 0
	if landed || b.StateTime >= s.config.Boss.Jump.TimeoutMs.Duration() {
		s.land(b)
	}
}

func (s *BossSystem) land(b *entity.Boss) {
	b.Y = b.GroundY
	b.VY = 0
	b.JumpVX = 0
	b.Enter(entity.BossWalking)
}

// Hit applies projectile damage. A hit that leaves energy goes to Hurt;
// the lethal one is left for CheckDeath.
func (s *BossSystem) Hit(damage int) bool {
	b := s.Boss()
	if b == nil || b.Defeated() {
		return false
	}
	if !b.Health.Hit(s.timers.Now(), damage, s.config.Boss.HitCooldownMs.Duration()) {
		return false
	}
	s.services.Display.SetBossHealthPercentage(b.Percentage())

	if b.IsDead() {
		return true
	}

	b.Y = b.GroundY
	b.VY = 0
	b.JumpVX = 0
	b.Speed = 0
	b.Enter(entity.BossHurt)
	s.play(service.ClipBossHurt)
	return true
}

// CheckDeath latches the death of a boss whose energy ran out.
// Reports true only on the tick the latch is set.
func (s *BossSystem) CheckDeath() bool {
	b := s.Boss()
	if b == nil || b.Defeated() || !b.IsDead() {
		return false
	}

	s.timers.CancelOwner(timer.Owner(b.ID))
	b.Y = b.GroundY
	b.VY = 0
	b.JumpVX = 0
	b.Speed = 0
	b.Enter(entity.BossDead)
	s.play(service.ClipBossDead)
	return true
}

func (s *BossSystem) play(clip service.ClipID) {
	s.services.Sound.PlaySound(clip, s.config.Volume(string(clip)), false)
}

// frameAt returns the animation frame shown at t, holding the last one
func frameAt(t time.Duration, a config.AnimationConfig) int {
	frame := a.FrameMs.Duration()
	if frame <= 0 || a.Frames <= 0 {
		return 0
	}
	return min(int(t/frame), a.Frames-1)
}
