package service

// Recorder captures every call. Tests and the headless runner use it.
type Recorder struct {
	Sounds       []ClipID
	Health       []float64
	Coins        []int
	Bottles      []int
	BossHealth   []float64
	Outcomes     []Outcome
	LoopedSounds int
}

// Services returns a bundle routing every collaborator to r
func (r *Recorder) Services() Services {
	return Services{Sound: r, Display: r, Lifecycle: r}
}

func (r *Recorder) PlaySound(clip ClipID, _ float64, loop bool) {
	r.Sounds = append(r.Sounds, clip)
	if loop {
		r.LoopedSounds++
	}
}

func (r *Recorder) SetHealthPercentage(pct float64)     { r.Health = append(r.Health, pct) }
func (r *Recorder) SetCoinCount(n int)                  { r.Coins = append(r.Coins, n) }
func (r *Recorder) SetBottleCount(n int)                { r.Bottles = append(r.Bottles, n) }
func (r *Recorder) SetBossHealthPercentage(pct float64) { r.BossHealth = append(r.BossHealth, pct) }
func (r *Recorder) OnGameEnded(o Outcome)               { r.Outcomes = append(r.Outcomes, o) }

// Count returns how often clip was played
func (r *Recorder) Count(clip ClipID) int {
	n := 0
	for _, c := range r.Sounds {
		if c == clip {
			n++
		}
	}
	return n
}
