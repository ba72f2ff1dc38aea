package system

import (
	"reflect"

	"github.com/younwookim/chickenrun/internal/domain/entity"
)

// IsColliding reports whether the inset hit boxes of a and b overlap.
// Degenerate boxes never collide, and neither do nil entities.
func IsColliding(a, b entity.Collider) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return overlaps(a.Box(), b.Box())
}

// IsNear is the loose pickup test: a's hit box against b's drawn
// rectangle grown by buffer on every side.
func IsNear(a entity.Collider, b entity.Bounded, buffer float64) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return overlaps(a.Box(), b.RawBox().Grow(buffer))
}

// isNil also catches a nil pointer stored in an interface, whose
// promoted Box method would dereference it.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func overlaps(a, b entity.Box) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return a.Overlaps(b)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
