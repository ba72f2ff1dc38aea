package entity

// Collectible is a coin or a bottle lying in the level
type Collectible struct {
	ID   EntityID
	Kind Kind
	Body
	Lifetime
}

// NewCollectible places a pickup at x, y
func NewCollectible(id EntityID, kind Kind, x, y float64, shape Shape) *Collectible {
	return &Collectible{
		ID:   id,
		Kind: kind,
		Body: NewBody(x, y, shape),
	}
}
