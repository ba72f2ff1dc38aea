package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/chickenrun/internal/application/service"
)

type fakeVoice struct {
	plays   int
	rewinds int
	volume  float64
}

func (v *fakeVoice) Rewind() error         { v.rewinds++; return nil }
func (v *fakeVoice) Play()                 { v.plays++ }
func (v *fakeVoice) SetVolume(vol float64) { v.volume = vol }

type fakeMixer struct {
	voices  map[voiceKey]*fakeVoice
	loads   int
	missing map[service.ClipID]bool
}

func newFakeMixer() *fakeMixer {
	return &fakeMixer{
		voices:  make(map[voiceKey]*fakeVoice),
		missing: make(map[service.ClipID]bool),
	}
}

func (m *fakeMixer) Load(clip service.ClipID, loop bool) (Voice, error) {
	m.loads++
	if m.missing[clip] {
		return nil, errors.New("no such clip")
	}
	v := &fakeVoice{}
	m.voices[voiceKey{clip, loop}] = v
	return v, nil
}

func TestPlayer_PlaySound(t *testing.T) {
	mixer := newFakeMixer()
	p := NewPlayer(mixer)

	p.PlaySound(service.ClipCoin, 0.5, false)
	p.PlaySound(service.ClipCoin, 0.5, false)

	require.Equal(t, 1, mixer.loads, "voice is reused")
	v := mixer.voices[voiceKey{service.ClipCoin, false}]
	assert.Equal(t, 2, v.plays)
	assert.Equal(t, 2, v.rewinds)
	assert.Equal(t, 0.5, v.volume)
}

func TestPlayer_LoopIsSeparateVoice(t *testing.T) {
	mixer := newFakeMixer()
	p := NewPlayer(mixer)

	p.PlaySound(service.ClipBossAlert, 1, false)
	p.PlaySound(service.ClipBossAlert, 1, true)

	assert.Equal(t, 2, mixer.loads)
	assert.Len(t, mixer.voices, 2)
}

func TestPlayer_Muted(t *testing.T) {
	mixer := newFakeMixer()
	p := NewPlayer(mixer)

	assert.True(t, p.ToggleMute())
	p.PlaySound(service.ClipCoin, 1, false)
	assert.Zero(t, mixer.loads)

	p.SetMuted(false)
	assert.False(t, p.Muted())
	p.PlaySound(service.ClipCoin, 1, false)
	assert.Equal(t, 1, mixer.voices[voiceKey{service.ClipCoin, false}].plays)
}

func TestPlayer_MissingClipTriedOnce(t *testing.T) {
	mixer := newFakeMixer()
	mixer.missing[service.ClipBossDead] = true
	p := NewPlayer(mixer)

	assert.NotPanics(t, func() {
		p.PlaySound(service.ClipBossDead, 1, false)
		p.PlaySound(service.ClipBossDead, 1, false)
	})
	assert.Equal(t, 1, mixer.loads)
}

func TestPlayer_MasterVolume(t *testing.T) {
	tests := []struct {
		name   string
		master float64
		volume float64
		want   float64
	}{
		{"full", 1, 0.8, 0.8},
		{"half", 0.5, 0.8, 0.4},
		{"clamped master", 3, 0.6, 0.6},
		{"clamped product", 1, 2, 1},
		{"silent", -1, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mixer := newFakeMixer()
			p := NewPlayer(mixer)
			p.SetMasterVolume(tt.master)

			p.PlaySound(service.ClipPlayerHurt, tt.volume, false)

			assert.InDelta(t, tt.want, mixer.voices[voiceKey{service.ClipPlayerHurt, false}].volume, 1e-9)
		})
	}
}

func TestBeep(t *testing.T) {
	pcm := beep(440, 0.1)

	assert.Len(t, pcm, int(SampleRate*0.1)*4)
	assert.Equal(t, pcm[0], pcm[2], "stereo channels match")
	assert.Equal(t, pcm[1], pcm[3])
}

func TestBeepsCoverEveryClip(t *testing.T) {
	for _, clip := range []service.ClipID{
		service.ClipCoin, service.ClipBottleCollect, service.ClipBottleThrow,
		service.ClipBottleShatter, service.ClipChickenHurt, service.ClipPlayerHurt,
		service.ClipPlayerDead, service.ClipBossAlert, service.ClipBossHurt, service.ClipBossDead,
	} {
		assert.Contains(t, beeps, clip)
	}
}
