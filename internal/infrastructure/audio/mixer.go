package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/younwookim/chickenrun/internal/application/service"
)

// SampleRate of the shared audio context
const SampleRate = 44100

// beeps stand in for clips missing from the sound folder
var beeps = map[service.ClipID]struct {
	freq, seconds float64
}{
	service.ClipCoin:          {1320, 0.08},
	service.ClipBottleCollect: {880, 0.08},
	service.ClipBottleThrow:   {660, 0.06},
	service.ClipBottleShatter: {300, 0.12},
	service.ClipChickenHurt:   {520, 0.1},
	service.ClipPlayerHurt:    {220, 0.15},
	service.ClipPlayerDead:    {140, 0.5},
	service.ClipBossAlert:     {180, 0.35},
	service.ClipBossHurt:      {260, 0.15},
	service.ClipBossDead:      {110, 0.6},
}

// EbitenMixer loads <clip>.wav files from fsys into ebiten players
type EbitenMixer struct {
	ctx  *audio.Context
	fsys fs.FS
}

// NewEbitenMixer creates the process-wide audio context. fsys may be nil,
// in which case every clip is a generated beep.
func NewEbitenMixer(fsys fs.FS) *EbitenMixer {
	return &EbitenMixer{
		ctx:  audio.NewContext(SampleRate),
		fsys: fsys,
	}
}

// Load implements Mixer
func (m *EbitenMixer) Load(clip service.ClipID, loop bool) (Voice, error) {
	src, length, err := m.open(clip)
	if errors.Is(err, fs.ErrNotExist) {
		b, ok := beeps[clip]
		if !ok {
			return nil, err
		}
		log.Printf("audio: %s.wav not found, using a beep", clip)
		pcm := beep(b.freq, b.seconds)
		src, length = bytes.NewReader(pcm), int64(len(pcm))
	} else if err != nil {
		return nil, err
	}

	var stream io.Reader = src
	if loop {
		stream = audio.NewInfiniteLoop(src, length)
	}
	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (m *EbitenMixer) open(clip service.ClipID) (io.ReadSeeker, int64, error) {
	if m.fsys == nil {
		return nil, 0, fs.ErrNotExist
	}
	data, err := fs.ReadFile(m.fsys, string(clip)+".wav")
	if err != nil {
		return nil, 0, err
	}
	s, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s.wav: %w", clip, err)
	}
	return s, s.Length(), nil
}

// beep synthesizes a sine tone as 16-bit little-endian stereo
func beep(freq, seconds float64) []byte {
	n := int(SampleRate * seconds)
	pcm := make([]byte, n*4)
	const amp = 0.35
	for i := 0; i < n; i++ {
		// fade out over the last tenth to avoid a click
		fade := min(1, float64(n-i)/(float64(n)/10))
		v := math.Sin(2 * math.Pi * freq * float64(i) / SampleRate)
		s := int16(v * amp * fade * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}
