package config

import "fmt"

// LevelConfig is the root of a levels/*.yaml file
type LevelConfig struct {
	Name    string            `yaml:"name"`
	EndX    float64           `yaml:"endX"`
	Player  PointConfig       `yaml:"player"`
	Enemies []PlacementConfig `yaml:"enemies"`
	Coins   []PointConfig     `yaml:"coins"`
	Bottles []PointConfig     `yaml:"bottles"`
	Boss    *BossPlacement    `yaml:"boss"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlacementConfig places an enemy. Y defaults to the kind's ground line.
type PlacementConfig struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y,omitempty"`
}

// BossPlacement places the boss. Zero values fall back to the tuning.
type BossPlacement struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Energy        int     `yaml:"energy,omitempty"`
	AlertX        float64 `yaml:"alertX,omitempty"`
	EarlyContactX float64 `yaml:"earlyContactX,omitempty"`
}

// Validate checks a level against the tuning it will be played with
func (l *LevelConfig) Validate(t *Tuning) error {
	if l.EndX <= 0 {
		return fmt.Errorf("level %q: endX must be positive, got %v", l.Name, l.EndX)
	}
	if l.Player.X < 0 || l.Player.X > l.EndX {
		return fmt.Errorf("level %q: player spawn x %v outside [0, %v]", l.Name, l.Player.X, l.EndX)
	}
	for i, e := range l.Enemies {
		kind, ok := t.Enemies[e.Kind]
		if !ok {
			return fmt.Errorf("level %q: enemy %d has unknown kind %q", l.Name, i, e.Kind)
		}
		if !kind.Shape.Valid() {
			return fmt.Errorf("level %q: enemy kind %q has an empty hit box", l.Name, e.Kind)
		}
		if kind.RemovalDelayMs <= 0 {
			return fmt.Errorf("level %q: enemy kind %q needs a positive removalDelayMs", l.Name, e.Kind)
		}
	}
	if len(l.Coins) > 0 && !t.Pickups["coin"].Shape.Valid() {
		return fmt.Errorf("level %q: coin pickup has an empty hit box", l.Name)
	}
	if len(l.Bottles) > 0 && !t.Pickups["bottle"].Shape.Valid() {
		return fmt.Errorf("level %q: bottle pickup has an empty hit box", l.Name)
	}
	if l.Boss != nil && l.Boss.Energy < 0 {
		return fmt.Errorf("level %q: boss energy must not be negative", l.Name)
	}
	return nil
}
