package entity

import "time"

// BossState is the behavior the end boss is currently in
type BossState int

const (
	BossDormant BossState = iota
	BossAlert
	BossWalking
	BossAttacking
	BossJumpAttacking
	BossHurt
	BossDead
)

// String returns the state name
func (s BossState) String() string {
	switch s {
	case BossDormant:
		return "dormant"
	case BossAlert:
		return "alert"
	case BossWalking:
		return "walking"
	case BossAttacking:
		return "attacking"
	case BossJumpAttacking:
		return "jump_attacking"
	case BossHurt:
		return "hurt"
	case BossDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Boss is the end boss. Behavior lives in system.BossSystem.
type Boss struct {
	ID EntityID
	Body
	Health

	GroundY float64

	State     BossState
	StateTime time.Duration // time spent in State
	AnimFrame int

	Aggression int
	Speed      float64
	VY         float64 // jump speed, positive is upward
	JumpVX     float64

	LastAttack   Stamp
	LastJump     Stamp
	RecoverUntil time.Duration

	HadFirstContact bool
	AlertPlayed     bool
}

// NewBoss creates a dormant boss standing on its ground line
func NewBoss(id EntityID, x, y float64, shape Shape, energy int) *Boss {
	return &Boss{
		ID:         id,
		Body:       NewBody(x, y, shape),
		Health:     NewHealth(energy),
		GroundY:    y,
		State:      BossDormant,
		Aggression: 1,
	}
}

// Defeated reports the death latch. It stays set once reached.
func (b *Boss) Defeated() bool {
	return b.State == BossDead
}

// IsAttacking reports the standing attack
func (b *Boss) IsAttacking() bool {
	return b.State == BossAttacking
}

// IsJumping reports the jump attack
func (b *Boss) IsJumping() bool {
	return b.State == BossJumpAttacking
}

// Enter switches state and restarts the state clock
func (b *Boss) Enter(s BossState) {
	b.State = s
	b.StateTime = 0
	b.AnimFrame = 0
}
