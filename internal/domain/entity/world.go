package entity

// Level holds everything placed in the level at construction
type Level struct {
	Name    string
	EndX    float64
	Enemies []*Enemy
	Coins   []*Collectible
	Bottles []*Collectible
	Boss    *Boss

	AlertX        float64 // boss wakes up when the player reaches it
	EarlyContactX float64 // boss starts walking a while after the player reaches it
}

// World is the mutable state of one session
type World struct {
	Player      *Player
	Level       *Level
	Projectiles []*Projectile

	nextID EntityID
}

// NewWorld wraps a level. IDs continue after the highest one already used.
func NewWorld(level *Level) *World {
	w := &World{Level: level}
	bump := func(id EntityID) {
		if id >= w.nextID {
			w.nextID = id + 1
		}
	}
	for _, e := range level.Enemies {
		bump(e.ID)
	}
	for _, c := range level.Coins {
		bump(c.ID)
	}
	for _, c := range level.Bottles {
		bump(c.ID)
	}
	if level.Boss != nil {
		bump(level.Boss.ID)
	}
	return w
}

// NextID hands out a fresh entity ID
func (w *World) NextID() EntityID {
	if w.nextID == 0 {
		w.nextID = 1
	}
	id := w.nextID
	w.nextID++
	return id
}

// LiveEnemies counts walkers that can still fight
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Level.Enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

// Sweep drops every entity marked for removal during the tick.
// Returns how many were dropped.
func (w *World) Sweep() int {
	var total, n int
	w.Level.Enemies, n = sweep(w.Level.Enemies)
	total += n
	w.Level.Coins, n = sweep(w.Level.Coins)
	total += n
	w.Level.Bottles, n = sweep(w.Level.Bottles)
	total += n
	w.Projectiles, n = sweep(w.Projectiles)
	return total + n
}

func sweep[T Removable](items []T) ([]T, int) {
	kept := items[:0]
	for _, it := range items {
		if !it.Removed() {
			kept = append(kept, it)
		}
	}
	dropped := len(items) - len(kept)
	clear(items[len(kept):])
	return kept, dropped
}
