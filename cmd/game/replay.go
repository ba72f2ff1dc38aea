package main

import (
	"fmt"

	"github.com/younwookim/chickenrun/internal/application/replay"
	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/session"
	"github.com/younwookim/chickenrun/internal/application/system"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
)

// settleTicks bounds how long a decided game may keep running after the
// recorded input ran out
const settleTicks = 600

// replayResult summarizes a headless run
type replayResult struct {
	Level   string
	Seed    int64
	Ticks   uint64
	Outcome service.Outcome
	Energy  int
	Coins   int
	Bottles int
	X       float64
	Sounds  int
}

func (r replayResult) String() string {
	return fmt.Sprintf("level=%s seed=%d ticks=%d outcome=%s energy=%d coins=%d bottles=%d x=%.1f sounds=%d",
		r.Level, r.Seed, r.Ticks, r.Outcome, r.Energy, r.Coins, r.Bottles, r.X, r.Sounds)
}

// runReplay feeds recorded input into a fresh session built from the
// recorded seed and level
func runReplay(loader *config.Loader, data *replay.ReplayData) (*replayResult, error) {
	cfg, err := loader.LoadAll(data.Level)
	if err != nil {
		return nil, err
	}

	rec := &service.Recorder{}
	s, err := session.New(cfg.Tuning, cfg.Level, rec.Services(), data.Seed)
	if err != nil {
		return nil, err
	}
	defer s.End()

	r := replay.NewReplayer(*data)
	for !s.Ended() {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		s.Step(in)
	}
	for i := 0; i < settleTicks && s.Finishing() && !s.Ended(); i++ {
		s.Step(system.InputState{})
	}

	p := s.World().Player
	return &replayResult{
		Level:   data.Level,
		Seed:    data.Seed,
		Ticks:   s.Ticks(),
		Outcome: s.Outcome(),
		Energy:  p.Energy(),
		Coins:   p.Coins,
		Bottles: p.Bottles,
		X:       p.X,
		Sounds:  len(rec.Sounds),
	}, nil
}
