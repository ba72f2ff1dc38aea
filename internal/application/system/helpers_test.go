package system

import (
	"math/rand"
	"time"

	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/timer"
	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// testRNG returns a deterministic RNG for reproducible tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestTuning() *config.Tuning {
	return config.Default()
}

type fixture struct {
	cfg     *config.Tuning
	world   *entity.World
	timers  *timer.Registry
	rec     *service.Recorder
	physics *PhysicsSystem
	boss    *BossSystem
	combat  *CombatSystem
	throw   *ThrowSystem
}

// newFixture builds an empty level with the player standing at x=100
func newFixture(cfg *config.Tuning) *fixture {
	level := &entity.Level{
		Name:          "test",
		EndX:          4500,
		AlertX:        cfg.Boss.Activation.AlertX,
		EarlyContactX: cfg.Boss.Activation.EarlyContactX,
	}
	w := entity.NewWorld(level)
	w.Player = entity.NewPlayer(w.NextID(), 100, cfg.Physics.GroundY, ShapeOf(cfg.Player.Shape), cfg.Player.Energy, cfg.Player.Speed, cfg.Physics.GroundY)

	f := &fixture{
		cfg:    cfg,
		world:  w,
		timers: timer.NewRegistry(),
		rec:    &service.Recorder{},
	}
	svc := f.rec.Services()
	f.physics = NewPhysicsSystem(cfg)
	f.boss = NewBossSystem(cfg, w, f.timers, svc, testRNG())
	f.combat = NewCombatSystem(cfg, w, f.timers, svc, f.physics, f.boss)
	f.throw = NewThrowSystem(cfg, w, f.timers, svc)
	return f
}

func (f *fixture) addChicken(x, y float64) *entity.Enemy {
	e := entity.NewEnemy(f.world.NextID(), entity.KindChicken, x, y, ShapeOf(f.cfg.Enemies["chicken"].Shape), 0.3)
	f.world.Level.Enemies = append(f.world.Level.Enemies, e)
	return e
}

func (f *fixture) addCoin(x, y float64) *entity.Collectible {
	c := entity.NewCollectible(f.world.NextID(), entity.KindCoin, x, y, ShapeOf(f.cfg.Pickups["coin"].Shape))
	f.world.Level.Coins = append(f.world.Level.Coins, c)
	return c
}

func (f *fixture) addBottlePickup(x, y float64) *entity.Collectible {
	c := entity.NewCollectible(f.world.NextID(), entity.KindBottlePickup, x, y, ShapeOf(f.cfg.Pickups["bottle"].Shape))
	f.world.Level.Bottles = append(f.world.Level.Bottles, c)
	return c
}

func (f *fixture) addBottle(x, y float64) *entity.Projectile {
	b := entity.NewBottle(f.world.NextID(), x, y, ShapeOf(f.cfg.Projectile.Shape), f.cfg.Projectile.SpeedX, f.cfg.Projectile.LaunchSpeedY)
	f.world.Projectiles = append(f.world.Projectiles, b)
	return b
}

func (f *fixture) addBoss(x, y float64, energy int) *entity.Boss {
	b := entity.NewBoss(f.world.NextID(), x, y, ShapeOf(f.cfg.Boss.Shape), energy)
	f.world.Level.Boss = b
	return b
}

// advance moves the clock and the boss together in boss-step increments
func (f *fixture) advance(steps int) {
	step := f.cfg.Loop.BossStepMs.Duration()
	for i := 0; i < steps; i++ {
		f.timers.Advance(f.timers.Now() + step)
		f.boss.Update(step)
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
