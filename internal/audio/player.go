package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/wheel-picker/internal/wheel"
)

const sampleRate = beep.SampleRate(44100)

var outputFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// ErrUnsupported is returned for audio files the player cannot decode.
var ErrUnsupported = errors.New("unsupported audio file type")

// Player plays the picker's three cues through a single speaker mixer.
// Every method is a no-op until Init succeeds, so the picker keeps working
// on machines without an audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[wheel.Cue]*beep.Buffer
	playing     map[wheel.Cue]*beep.Ctrl
	initialized bool
}

func NewPlayer() *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		buffers: map[wheel.Cue]*beep.Buffer{},
		playing: map[wheel.Cue]*beep.Ctrl{},
	}
}

// Load prepares every cue: paths[c] is decoded when set, otherwise a
// built-in tone is used. A file that fails to load falls back to its tone.
func (p *Player) Load(paths map[wheel.Cue]string) {
	for _, c := range []wheel.Cue{wheel.CueSpin, wheel.CueCelebration, wheel.CueWinner} {
		var buf *beep.Buffer
		if path := paths[c]; path != "" {
			b, err := loadFile(path)
			if err != nil {
				log.Warn().Err(err).Str("cue", c.String()).Str("path", path).Msg("using built-in sound")
			} else {
				buf = b
			}
		}
		if buf == nil {
			buf = builtin(c)
		}
		p.mu.Lock()
		p.buffers[c] = buf
		p.mu.Unlock()
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts c from its beginning, replacing any earlier playback of c.
// The spin cue loops until stopped.
func (p *Player) Play(c wheel.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := p.buffers[c]
	if !p.initialized || buf == nil || buf.Len() == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if prev := p.playing[c]; prev != nil {
		prev.Streamer = nil
	}
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if c == wheel.CueSpin {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	ctrl := &beep.Ctrl{Streamer: s}
	p.playing[c] = ctrl
	p.mixer.Add(ctrl)
}

// Stop silences c. The mixer drops the ended streamer on its next pass.
func (p *Player) Stop(c wheel.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	ctrl := p.playing[c]
	if !p.initialized || ctrl == nil {
		return
	}
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
	delete(p.playing, c)
}

// Close stops every cue.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	for c, ctrl := range p.playing {
		ctrl.Streamer = nil
		delete(p.playing, c)
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func builtin(c wheel.Cue) *beep.Buffer {
	var samples floatBuffer
	switch c {
	case wheel.CueSpin:
		samples = tickSound()
	case wheel.CueCelebration:
		samples = fanfareSound()
	default:
		samples = bellSound()
	}
	buf := beep.NewBuffer(outputFormat)
	buf.Append(toStreamer(samples))
	return buf
}

// loadFile decodes a wav, mp3 or flac file fully into memory at the
// speaker's sample rate.
func loadFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}
	buf := beep.NewBuffer(outputFormat)
	buf.Append(s)
	return buf, nil
}
