package entity

import "time"

// Health is an energy pool that never drops below zero
type Health struct {
	energy  int
	max     int
	lastHit Stamp
}

// NewHealth returns a full pool
func NewHealth(max int) Health {
	if max < 0 {
		max = 0
	}
	return Health{energy: max, max: max}
}

// Energy returns the remaining energy
func (h *Health) Energy() int {
	return h.energy
}

// MaxEnergy returns the pool size
func (h *Health) MaxEnergy() int {
	return h.max
}

// Percentage returns the remaining energy in the 0..100 range
func (h *Health) Percentage() float64 {
	if h.max == 0 {
		return 0
	}
	return float64(h.energy) * 100 / float64(h.max)
}

// IsDead reports an empty pool
func (h *Health) IsDead() bool {
	return h.energy == 0
}

// LastHit returns when damage was last applied
func (h *Health) LastHit() Stamp {
	return h.lastHit
}

// Hit applies damage unless the previous hit is within cooldown.
// A non-positive cooldown accepts every hit. Reports whether damage was applied.
func (h *Health) Hit(now time.Duration, damage int, cooldown time.Duration) bool {
	if h.energy == 0 {
		return false
	}
	if cooldown > 0 && !h.lastHit.Elapsed(now, cooldown) {
		return false
	}
	h.energy -= damage
	if h.energy < 0 {
		h.energy = 0
	}
	h.lastHit.Mark(now)
	return true
}

// IsHurt reports whether the last hit happened less than window ago
func (h *Health) IsHurt(now, window time.Duration) bool {
	return h.lastHit.Within(now, window)
}

// Deplete empties the pool. Reports false if it was already empty.
func (h *Health) Deplete() bool {
	if h.energy == 0 {
		return false
	}
	h.energy = 0
	return true
}
