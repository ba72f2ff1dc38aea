package config

// ShapeConfig is a sprite size with hit box insets
type ShapeConfig struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Offset InsetsConfig `json:"offset"`
}

// Valid reports whether the inset hit box has a positive area
func (s ShapeConfig) Valid() bool {
	return s.Width-s.Offset.Left-s.Offset.Right > 0 && s.Height-s.Offset.Top-s.Offset.Bottom > 0
}

type InsetsConfig struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// EnemyConfig describes a walker kind. Speed is SpeedMin + rand*SpeedRange.
type EnemyConfig struct {
	Shape          ShapeConfig `json:"shape"`
	Y              float64     `json:"y"`
	SpeedMin       float64     `json:"speedMin"`
	SpeedRange     float64     `json:"speedRange"`
	RemovalDelayMs Millis      `json:"removalDelayMs"`
}

type ProjectileConfig struct {
	Shape          ShapeConfig `json:"shape"`
	SpawnOffsetX   float64     `json:"spawnOffsetX"`
	SpawnOffsetY   float64     `json:"spawnOffsetY"`
	SpeedX         float64     `json:"speedX"` // per movement step
	LaunchSpeedY   float64     `json:"launchSpeedY"`
	CooldownMs     Millis      `json:"cooldownMs"`
	RemovalDelayMs Millis      `json:"removalDelayMs"`
	FloorY         float64     `json:"floorY"` // bottle shatters when its y reaches this
	KillY          float64     `json:"killY"`
}

type PickupConfig struct {
	Shape ShapeConfig `json:"shape"`
}

type BossConfig struct {
	Shape         ShapeConfig      `json:"shape"`
	Energy        int              `json:"energy"`
	DamagePerHit  int              `json:"damagePerHit"`
	HitCooldownMs Millis           `json:"hitCooldownMs"`
	Activation    ActivationConfig `json:"activation"`
	Aggression    AggressionConfig `json:"aggression"`
	Walk          WalkConfig       `json:"walk"`
	Attack        AttackConfig     `json:"attack"`
	Jump          JumpConfig       `json:"jump"`
	Hurt          AnimationConfig  `json:"hurt"`
	Death         AnimationConfig  `json:"death"`
}

// ActivationConfig controls how the dormant boss wakes up
type ActivationConfig struct {
	AlertX              float64         `json:"alertX"`
	EarlyContactX       float64         `json:"earlyContactX"`
	EarlyContactDelayMs Millis          `json:"earlyContactDelayMs"`
	Alert               AnimationConfig `json:"alert"`
}

// AggressionConfig maps remaining energy to aggression levels 1..3
type AggressionConfig struct {
	MidEnergy  int `json:"midEnergy"`  // at or below: level 2
	HighEnergy int `json:"highEnergy"` // at or below: level 3
}

type WalkConfig struct {
	BaseSpeed          float64 `json:"baseSpeed"`
	SpeedPerAggression float64 `json:"speedPerAggression"`
	NearDistance       float64 `json:"nearDistance"`
	NearBonus          float64 `json:"nearBonus"`
	WoundedEnergy      int     `json:"woundedEnergy"`
	WoundedBonus       float64 `json:"woundedBonus"`
	CriticalEnergy     int     `json:"criticalEnergy"`
	CriticalBonus      float64 `json:"criticalBonus"`
}

type AttackConfig struct {
	BaseRange               float64 `json:"baseRange"`
	RangePerAggression      float64 `json:"rangePerAggression"`
	CooldownMs              Millis  `json:"cooldownMs"`
	CooldownPerAggressionMs Millis  `json:"cooldownPerAggressionMs"`
	MinCooldownMs           Millis  `json:"minCooldownMs"`
	Frames                  int     `json:"frames"`
	FrameMs                 Millis  `json:"frameMs"`
	FramePerAggressionMs    Millis  `json:"framePerAggressionMs"`
	MinFrameMs              Millis  `json:"minFrameMs"`
	RecoverySpeed           float64 `json:"recoverySpeed"`
	RecoveryPerAggression   float64 `json:"recoveryPerAggression"`
	RecoveryMs              Millis  `json:"recoveryMs"`
}

type JumpConfig struct {
	MinDistance          float64 `json:"minDistance"`
	MaxDistance          float64 `json:"maxDistance"`
	CooldownMs           Millis  `json:"cooldownMs"`
	ChancePerAggression  float64 `json:"chancePerAggression"`
	Impulse              float64 `json:"impulse"`
	ImpulsePerAggression float64 `json:"impulsePerAggression"`
	Speed                float64 `json:"speed"`
	SpeedPerAggression   float64 `json:"speedPerAggression"`
	Gravity              float64 `json:"gravity"`
	TimeoutMs            Millis  `json:"timeoutMs"`
}

// AnimationConfig is a fixed-length animation followed by a pause
type AnimationConfig struct {
	Frames   int    `json:"frames"`
	FrameMs  Millis `json:"frameMs"`
	SettleMs Millis `json:"settleMs"`
}

// Length returns how long the frames take
func (a AnimationConfig) Length() Millis {
	return Millis(float64(a.Frames) * float64(a.FrameMs))
}

// Total returns frames plus settle time
func (a AnimationConfig) Total() Millis {
	return a.Length() + a.SettleMs
}
