// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/chickenrun/internal/application/replay"
	"github.com/younwookim/chickenrun/internal/application/scene"
	"github.com/younwookim/chickenrun/internal/application/service"
	"github.com/younwookim/chickenrun/internal/application/session"
	"github.com/younwookim/chickenrun/internal/application/state"
	"github.com/younwookim/chickenrun/internal/application/system"
	"github.com/younwookim/chickenrun/internal/infrastructure/config"
	"github.com/younwookim/chickenrun/internal/infrastructure/font"
)

// Muter is a sound output that can be silenced
type Muter interface {
	service.Sound
	ToggleMute() bool
}

// Options configures a Playing scene
type Options struct {
	Tuning *config.Tuning
	Level  *config.LevelConfig
	Sound  Muter // nil plays nothing
	Faces  *font.Faces

	// RecordPath enables input recording when not empty
	RecordPath string
	// Seed returns the seed of each new session; defaults to the clock
	Seed func() int64
	// Menu builds the scene shown on quit; nil closes the game
	Menu func() scene.Scene
}

// Playing is the main gameplay scene
type Playing struct {
	opts    Options
	session *session.Session
	hud     *HUD
	state   state.GameState
	keys    KeyMap

	screenW int
	screenH int

	recorder *replay.Recorder
}

// controls is what one frame of keyboard state asks for
type controls struct {
	pause   bool
	mute    bool
	restart bool
	menu    bool
	input   system.InputState
}

// New creates a new Playing scene and starts its first session
func New(opts Options) (*Playing, error) {
	if opts.Tuning == nil || opts.Level == nil {
		return nil, errors.New("playing: tuning and level are required")
	}
	if opts.Seed == nil {
		opts.Seed = func() int64 { return time.Now().UnixNano() }
	}

	p := &Playing{
		opts:    opts,
		hud:     NewHUD(opts.Faces),
		keys:    DefaultKeyMap(),
		screenW: opts.Tuning.Display.ScreenWidth,
		screenH: opts.Tuning.Display.ScreenHeight,
	}
	if err := p.start(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Playing) start() error {
	var sound service.Sound
	if p.opts.Sound != nil {
		sound = p.opts.Sound
	}
	services := service.Services{
		Sound:     sound,
		Display:   p.hud,
		Lifecycle: service.LifecycleFunc(p.onGameEnded),
	}

	p.hud.Reset()
	seed := p.opts.Seed()
	s, err := session.New(p.opts.Tuning, p.opts.Level, services, seed)
	if err != nil {
		return fmt.Errorf("playing: %w", err)
	}
	p.session = s
	p.state = state.StatePlaying

	if p.opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(seed, p.opts.Level.Name, s.ID.String())
		log.Printf("Recording enabled: %s (seed: %d)", p.opts.RecordPath, seed)
	}
	return nil
}

func (p *Playing) onGameEnded(o service.Outcome) {
	p.state = state.FromOutcome(o)
	p.saveRecording()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	return p.apply(p.readControls())
}

func (p *Playing) readControls() controls {
	pressed := inpututil.IsKeyJustPressed
	return controls{
		pause:   pressed(ebiten.KeyEscape) || pressed(ebiten.KeyP),
		mute:    pressed(ebiten.KeyM),
		restart: pressed(ebiten.KeyEnter),
		menu:    pressed(ebiten.KeyQ),
		input:   p.keys.Read(ebiten.IsKeyPressed),
	}
}

func (p *Playing) apply(c controls) (scene.Scene, error) {
	if c.mute && p.opts.Sound != nil {
		muted := p.opts.Sound.ToggleMute()
		log.Printf("sound muted: %t", muted)
	}

	switch p.state {
	case state.StatePlaying:
		if c.pause {
			p.state = state.StatePaused
			return nil, nil
		}
		if p.recorder != nil {
			p.recorder.RecordFrame(c.input)
		}
		p.session.Step(c.input)
	case state.StatePaused:
		switch {
		case c.pause:
			p.state = state.StatePlaying
		case c.restart:
			return nil, p.restart()
		case c.menu:
			return p.menu()
		}
	case state.StateWon, state.StateLost:
		switch {
		case c.restart:
			return nil, p.restart()
		case c.menu, c.pause:
			return p.menu()
		}
	}
	return nil, nil // nil = stay on this scene
}

func (p *Playing) restart() error {
	p.session.End()
	p.saveRecording()
	return p.start()
}

func (p *Playing) menu() (scene.Scene, error) {
	if p.opts.Menu == nil {
		return nil, scene.ErrQuit
	}
	return p.opts.Menu(), nil
}

// saveRecording writes the current recording once
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}
	p.recorder.Stop()

	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", p.opts.RecordPath, p.recorder.FrameCount())
	}
	p.recorder = nil
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("playing level %q", p.opts.Level.Name)
}

// OnExit stops the session and flushes any recording
func (p *Playing) OnExit() {
	p.session.End()
	p.saveRecording()
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}
