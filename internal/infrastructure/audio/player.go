// Package audio plays the game's sound cues through ebiten's audio context.
package audio

import (
	"log"
	"sync"

	"github.com/younwookim/chickenrun/internal/application/service"
)

// Voice is one playable clip
type Voice interface {
	Rewind() error
	Play()
	SetVolume(volume float64)
}

// Mixer creates voices by clip name
type Mixer interface {
	Load(clip service.ClipID, loop bool) (Voice, error)
}

type voiceKey struct {
	clip service.ClipID
	loop bool
}

// Player implements service.Sound. Voices are loaded on first use and
// reused; a clip that fails to load is logged once and stays silent.
type Player struct {
	mixer  Mixer
	master float64

	mu     sync.Mutex
	voices map[voiceKey]Voice
	failed map[voiceKey]bool
	muted  bool
}

// NewPlayer creates a player on top of mixer
func NewPlayer(mixer Mixer) *Player {
	return &Player{
		mixer:  mixer,
		master: 1,
		voices: make(map[voiceKey]Voice),
		failed: make(map[voiceKey]bool),
	}
}

// PlaySound restarts clip from the beginning at volume times the master volume
func (p *Player) PlaySound(clip service.ClipID, volume float64, loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return
	}
	v := p.voice(voiceKey{clip: clip, loop: loop})
	if v == nil {
		return
	}
	v.SetVolume(clamp(volume * p.master))
	if err := v.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", clip, err)
	}
	v.Play()
}

func (p *Player) voice(key voiceKey) Voice {
	if v, ok := p.voices[key]; ok {
		return v
	}
	if p.failed[key] {
		return nil
	}
	v, err := p.mixer.Load(key.clip, key.loop)
	if err != nil {
		p.failed[key] = true
		log.Printf("audio: clip %s unavailable: %v", key.clip, err)
		return nil
	}
	p.voices[key] = v
	return v
}

// SetMuted turns every cue off or back on
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// ToggleMute flips the mute flag and returns the new state
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports the mute flag
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// SetMasterVolume scales every cue, 0..1
func (p *Player) SetMasterVolume(v float64) {
	p.mu.Lock()
	p.master = clamp(v)
	p.mu.Unlock()
}

func clamp(v float64) float64 {
	return min(max(v, 0), 1)
}
