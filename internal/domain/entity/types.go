package entity

import "time"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Kind identifies the family an entity belongs to
type Kind int

const (
	KindPlayer Kind = iota
	KindChicken
	KindChick
	KindBoss
	KindBottle
	KindCoin
	KindBottlePickup
)

var kindNames = map[Kind]string{
	KindPlayer:       "player",
	KindChicken:      "chicken",
	KindChick:        "chick",
	KindBoss:         "boss",
	KindBottle:       "bottle",
	KindCoin:         "coin",
	KindBottlePickup: "bottle_pickup",
}

// String returns the name used in config and level files
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a level file name back to a Kind
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Stamp remembers the simulation time of the last occurrence of something.
// The zero value means "never happened".
type Stamp struct {
	at  time.Duration
	set bool
}

// Mark records now as the latest occurrence
func (s *Stamp) Mark(now time.Duration) {
	s.at = now
	s.set = true
}

// Clear forgets the recorded occurrence
func (s *Stamp) Clear() {
	*s = Stamp{}
}

// IsSet reports whether the stamp has ever been marked
func (s Stamp) IsSet() bool {
	return s.set
}

// At returns the recorded time. Only meaningful when IsSet.
func (s Stamp) At() time.Duration {
	return s.at
}

// Since returns the time passed since the stamp, and false when never marked
func (s Stamp) Since(now time.Duration) (time.Duration, bool) {
	if !s.set {
		return 0, false
	}
	return now - s.at, true
}

// Elapsed reports whether strictly more than d has passed since the stamp.
// A stamp that was never marked has always elapsed.
func (s Stamp) Elapsed(now, d time.Duration) bool {
	return !s.set || now-s.at > d
}

// Within reports whether the stamp was marked less than d ago
func (s Stamp) Within(now, d time.Duration) bool {
	return s.set && now-s.at < d
}
