// Package service declares the collaborators the simulation calls out to.
// Every call is best effort: a failing collaborator never stops a tick.
package service

// ClipID names a sound effect
type ClipID string

const (
	ClipCoin          ClipID = "coin"
	ClipBottleCollect ClipID = "bottle_collect"
	ClipBottleThrow   ClipID = "bottle_throw"
	ClipBottleShatter ClipID = "bottle_shatter"
	ClipChickenHurt   ClipID = "chicken_hurt"
	ClipPlayerHurt    ClipID = "hurt"
	ClipPlayerDead    ClipID = "player_dead"
	ClipBossAlert     ClipID = "boss_alert"
	ClipBossHurt      ClipID = "boss_hurt"
	ClipBossDead      ClipID = "boss_dead"
)

// Outcome is how a session ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Sound plays sound effects
type Sound interface {
	PlaySound(clip ClipID, volume float64, loop bool)
}

// Display shows the status bars
type Display interface {
	SetHealthPercentage(pct float64)
	SetCoinCount(n int)
	SetBottleCount(n int)
	SetBossHealthPercentage(pct float64)
}

// Lifecycle is told once when a session ends
type Lifecycle interface {
	OnGameEnded(outcome Outcome)
}

// LifecycleFunc adapts a function to Lifecycle
type LifecycleFunc func(Outcome)

// OnGameEnded calls f
func (f LifecycleFunc) OnGameEnded(o Outcome) {
	f(o)
}

// Services bundles the collaborators of a session
type Services struct {
	Sound     Sound
	Display   Display
	Lifecycle Lifecycle
}

// Guarded fills missing collaborators with no-ops and wraps the rest
// so a panic inside one is logged and swallowed.
func (s Services) Guarded() Services {
	out := Services{
		Sound:     NopSound{},
		Display:   NopDisplay{},
		Lifecycle: NopLifecycle{},
	}
	if s.Sound != nil {
		out.Sound = guardedSound{s.Sound}
	}
	if s.Display != nil {
		out.Display = guardedDisplay{s.Display}
	}
	if s.Lifecycle != nil {
		out.Lifecycle = guardedLifecycle{s.Lifecycle}
	}
	return out
}

// NopSound discards every sound
type NopSound struct{}

func (NopSound) PlaySound(ClipID, float64, bool) {}

// NopDisplay discards every update
type NopDisplay struct{}

func (NopDisplay) SetHealthPercentage(float64)     {}
func (NopDisplay) SetCoinCount(int)                {}
func (NopDisplay) SetBottleCount(int)              {}
func (NopDisplay) SetBossHealthPercentage(float64) {}

// NopLifecycle ignores the end of the game
type NopLifecycle struct{}

func (NopLifecycle) OnGameEnded(Outcome) {}
