package entity

import "time"

// Pose is the animation the player currently shows
type Pose int

const (
	PoseIdle Pose = iota
	PoseLongIdle
	PoseWalking
	PoseJumping
	PoseHurt
	PoseDead
)

// String returns the pose name
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseLongIdle:
		return "long_idle"
	case PoseWalking:
		return "walking"
	case PoseJumping:
		return "jumping"
	case PoseHurt:
		return "hurt"
	case PoseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Player represents the player character
type Player struct {
	ID EntityID
	Body
	Health

	Speed   float64 // horizontal step per movement tick
	VY      float64 // vertical speed, positive is upward
	GroundY float64 // y of the resting position

	Idle     time.Duration
	CanThrow bool
	Coins    int
	Bottles  int

	Pose      Pose
	AnimFrame int
}

// NewPlayer creates a player standing at x, y
func NewPlayer(id EntityID, x, y float64, shape Shape, energy int, speed, groundY float64) *Player {
	return &Player{
		ID:       id,
		Body:     NewBody(x, y, shape),
		Health:   NewHealth(energy),
		Speed:    speed,
		GroundY:  groundY,
		CanThrow: true,
	}
}

// IsAirborne reports whether the player is above the ground line
func (p *Player) IsAirborne() bool {
	return p.Y < p.GroundY
}

// IsFalling reports downward motion while airborne
func (p *Player) IsFalling() bool {
	return p.VY < 0 && p.IsAirborne()
}
