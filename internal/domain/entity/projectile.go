package entity

// Projectile is a thrown bottle
type Projectile struct {
	ID EntityID
	Body
	Lifetime

	VX, VY float64 // VY positive is upward

	collided  bool
	Splashing bool
	AnimFrame int
}

// NewBottle creates a bottle flying with the given speeds
func NewBottle(id EntityID, x, y float64, shape Shape, vx, vy float64) *Projectile {
	return &Projectile{
		ID:   id,
		Body: NewBody(x, y, shape),
		VX:   vx,
		VY:   vy,
	}
}

// Collided reports whether the bottle already hit something
func (p *Projectile) Collided() bool {
	return p.collided
}

// Latch marks the first collision and stops the bottle.
// Reports false when it had already collided.
func (p *Projectile) Latch() bool {
	if p.collided {
		return false
	}
	p.collided = true
	p.Splashing = true
	p.VX, p.VY = 0, 0
	p.AnimFrame = 0
	return true
}

// IsActive reports whether the bottle can still hit something
func (p *Projectile) IsActive() bool {
	return !p.collided && !p.Removed()
}
