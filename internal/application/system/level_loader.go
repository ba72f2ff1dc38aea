package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/chickenrun/internal/domain/entity"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// ShapeOf converts a config shape into an entity shape
func ShapeOf(c config.ShapeConfig) entity.Shape {
	return entity.Shape{
		Width:  c.Width,
		Height: c.Height,
		Offset: entity.Insets{
			Top:    c.Offset.Top,
			Right:  c.Offset.Right,
			Bottom: c.Offset.Bottom,
			Left:   c.Offset.Left,
		},
	}
}

// LoadLevel converts a LevelConfig into a Level entity.
// Walker speeds are drawn from rng in placement order.
func LoadLevel(cfg *config.Tuning, lvl *config.LevelConfig, rng *rand.Rand) (*entity.Level, error) {
	level := &entity.Level{
		Name:          lvl.Name,
		EndX:          lvl.EndX,
		AlertX:        cfg.Boss.Activation.AlertX,
		EarlyContactX: cfg.Boss.Activation.EarlyContactX,
	}

	var id entity.EntityID
	nextID := func() entity.EntityID {
		id++
		return id
	}

	for i, p := range lvl.Enemies {
		kind, ok := entity.ParseKind(p.Kind)
		enemyCfg, known := cfg.Enemies[p.Kind]
		if !ok || !known {
			return nil, fmt.Errorf("level %s: enemy %d: unknown kind %q", lvl.Name, i, p.Kind)
		}
		y := p.Y
		if y == 0 {
			y = enemyCfg.Y
		}
		speed := enemyCfg.SpeedMin + rng.Float64()*enemyCfg.SpeedRange
		level.Enemies = append(level.Enemies, entity.NewEnemy(nextID(), kind, p.X, y, ShapeOf(enemyCfg.Shape), speed))
	}

	coin := ShapeOf(cfg.Pickups["coin"].Shape)
	for _, p := range lvl.Coins {
		level.Coins = append(level.Coins, entity.NewCollectible(nextID(), entity.KindCoin, p.X, p.Y, coin))
	}

	bottle := ShapeOf(cfg.Pickups["bottle"].Shape)
	for _, p := range lvl.Bottles {
		level.Bottles = append(level.Bottles, entity.NewCollectible(nextID(), entity.KindBottlePickup, p.X, p.Y, bottle))
	}

	if b := lvl.Boss; b != nil {
		energy := b.Energy
		if energy == 0 {
			energy = cfg.Boss.Energy
		}
		level.Boss = entity.NewBoss(nextID(), b.X, b.Y, ShapeOf(cfg.Boss.Shape), energy)
		if b.AlertX > 0 {
			level.AlertX = b.AlertX
		}
		if b.EarlyContactX > 0 {
			level.EarlyContactX = b.EarlyContactX
		}
	}

	return level, nil
}

// NewPlayer places a fresh player at the level spawn
func NewPlayer(cfg *config.Tuning, lvl *config.LevelConfig, id entity.EntityID) *entity.Player {
	return entity.NewPlayer(
		id,
		lvl.Player.X,
		lvl.Player.Y,
		ShapeOf(cfg.Player.Shape),
		cfg.Player.Energy,
		cfg.Player.Speed,
		cfg.Physics.GroundY,
	)
}
