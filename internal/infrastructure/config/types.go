package config

import "time"

// Millis is a duration written in milliseconds in config files
type Millis float64

// Duration converts to time.Duration
func (m Millis) Duration() time.Duration {
	return time.Duration(float64(m) * float64(time.Millisecond))
}

// Tuning is the root config for tuning.json
type Tuning struct {
	Display    DisplayConfig           `json:"display"`
	Loop       LoopConfig              `json:"loop"`
	Physics    PhysicsSettings         `json:"physics"`
	Player     PlayerConfig            `json:"player"`
	Enemies    map[string]EnemyConfig  `json:"enemies"`
	Projectile ProjectileConfig        `json:"projectile"`
	Pickups    map[string]PickupConfig `json:"pickups"`
	Combat     CombatConfig            `json:"combat"`
	Boss       BossConfig              `json:"boss"`
	Sounds     map[string]float64      `json:"sounds"` // clip name -> volume
}

type DisplayConfig struct {
	Title        string  `json:"title"`
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        float64 `json:"scale"`
	Framerate    int     `json:"framerate"`
	CameraOffset float64 `json:"cameraOffset"` // player distance from the left screen edge
}

// LoopConfig sets the fixed tick and the cadence of every subsystem
type LoopConfig struct {
	TicksPerSecond int    `json:"ticksPerSecond"`
	MovesPerSecond int    `json:"movesPerSecond"`
	GravityMs      Millis `json:"gravityMs"`
	PoseMs         Millis `json:"poseMs"`
	AnimationMs    Millis `json:"animationMs"`
	BossStepMs     Millis `json:"bossStepMs"`
	BossPollMs     Millis `json:"bossPollMs"`
}

// Tick returns the length of one simulation tick
func (l LoopConfig) Tick() time.Duration {
	if l.TicksPerSecond <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.TicksPerSecond)
}

// MoveInterval returns the movement cadence
func (l LoopConfig) MoveInterval() time.Duration {
	if l.MovesPerSecond <= 0 {
		return l.Tick()
	}
	return time.Second / time.Duration(l.MovesPerSecond)
}

type PhysicsSettings struct {
	Gravity     float64 `json:"gravity"`     // vertical speed lost per gravity step
	JumpImpulse float64 `json:"jumpImpulse"` // vertical speed set by a jump or a stomp bounce
	GroundY     float64 `json:"groundY"`     // player y when standing
}

type PlayerConfig struct {
	Shape        ShapeConfig `json:"shape"`
	Energy       int         `json:"energy"`
	Speed        float64     `json:"speed"`
	LongIdleMs   Millis      `json:"longIdleMs"`
	DeathDelayMs Millis      `json:"deathDelayMs"`
}

type CombatConfig struct {
	HitCooldownMs  Millis  `json:"hitCooldownMs"`
	HurtWindowMs   Millis  `json:"hurtWindowMs"`
	ContactDamage  int     `json:"contactDamage"`
	StompTolerance float64 `json:"stompTolerance"`
	StompRadiusX   float64 `json:"stompRadiusX"`
	StompRadiusY   float64 `json:"stompRadiusY"`
	PickupBuffer   float64 `json:"pickupBuffer"`
	MaxBottles     int     `json:"maxBottles"`
	MaxCoins       int     `json:"maxCoins"`
}

// Volume returns the configured volume of a clip, or 1 when unset
func (t *Tuning) Volume(clip string) float64 {
	if v, ok := t.Sounds[clip]; ok {
		return v
	}
	return 1
}
