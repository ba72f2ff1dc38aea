package entity

import "time"

// Enemy is a walking chicken. Both sizes share the same behavior.
type Enemy struct {
	ID   EntityID
	Kind Kind
	Body
	Health
	Lifetime

	Speed     float64
	Dying     bool
	AnimFrame int
}

// NewEnemy creates a live walker with a single point of energy
func NewEnemy(id EntityID, kind Kind, x, y float64, shape Shape, speed float64) *Enemy {
	return &Enemy{
		ID:     id,
		Kind:   kind,
		Body:   NewBody(x, y, shape),
		Health: NewHealth(1),
		Speed:  speed,
	}
}

// IsAlive reports whether the enemy still takes part in combat
func (e *Enemy) IsAlive() bool {
	return !e.IsDead() && !e.Removed()
}

// Kill empties the energy pool and starts the death animation.
// Reports false if the enemy was already dead.
func (e *Enemy) Kill() bool {
	if !e.Deplete() {
		return false
	}
	e.startDying()
	return true
}

// TakeDamage applies damage without cooldown. Reports true when this killed it.
func (e *Enemy) TakeDamage(now time.Duration, damage int) bool {
	if e.IsDead() {
		return false
	}
	e.Hit(now, damage, 0)
	if e.IsDead() {
		e.startDying()
		return true
	}
	return false
}

func (e *Enemy) startDying() {
	e.Dying = true
	e.Speed = 0
	e.AnimFrame = 0
}
