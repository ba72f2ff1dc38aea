package entity

import "math"

// Insets shrink the drawn rectangle of an entity into its hit box
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Shape is the size and hit box insets shared by every instance of a kind
type Shape struct {
	Width  float64
	Height float64
	Offset Insets
}

// Box is an axis-aligned rectangle in world units (y grows downward)
type Box struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Valid reports whether the box has finite coordinates and a positive area.
// Insets larger than the sprite produce invalid boxes.
func (b Box) Valid() bool {
	for _, v := range [...]float64{b.Left, b.Top, b.Right, b.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Width() > 0 && b.Height() > 0
}

// Grow returns the box extended by d on every side
func (b Box) Grow(d float64) Box {
	return Box{Left: b.Left - d, Top: b.Top - d, Right: b.Right + d, Bottom: b.Bottom + d}
}

// Overlaps reports strict overlap on both axes. Touching edges do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Right > o.Left && b.Left < o.Right && b.Bottom > o.Top && b.Top < o.Bottom
}

// Body is the positional part of every entity
type Body struct {
	X, Y          float64
	Width, Height float64
	Offset        Insets
	FacingLeft    bool
}

// NewBody places a shape at x, y
func NewBody(x, y float64, shape Shape) Body {
	return Body{
		X:      x,
		Y:      y,
		Width:  shape.Width,
		Height: shape.Height,
		Offset: shape.Offset,
	}
}

// RawBox returns the drawn rectangle without insets
func (b *Body) RawBox() Box {
	return Box{Left: b.X, Top: b.Y, Right: b.X + b.Width, Bottom: b.Y + b.Height}
}

// Box returns the inset hit box
func (b *Body) Box() Box {
	return Box{
		Left:   b.X + b.Offset.Left,
		Top:    b.Y + b.Offset.Top,
		Right:  b.X + b.Width - b.Offset.Right,
		Bottom: b.Y + b.Height - b.Offset.Bottom,
	}
}

// Bottom returns the y of the lower edge of the drawn rectangle
func (b *Body) Bottom() float64 {
	return b.Y + b.Height
}

// MidY returns the vertical center of the drawn rectangle
func (b *Body) MidY() float64 {
	return b.Y + b.Height/2
}

// Collider exposes an inset hit box
type Collider interface {
	Box() Box
}

// Bounded exposes the drawn rectangle
type Bounded interface {
	RawBox() Box
}

// Damageable is anything with an energy pool
type Damageable interface {
	Energy() int
	IsDead() bool
}

// Removable entities are marked during a tick and swept at its end
type Removable interface {
	Removed() bool
	MarkRemoved()
}

// Lifetime implements Removable
type Lifetime struct {
	removed bool
}

// Removed reports whether the entity waits for the sweep
func (l *Lifetime) Removed() bool {
	return l.removed
}

// MarkRemoved flags the entity for removal at the end of the tick
func (l *Lifetime) MarkRemoved() {
	l.removed = true
}
