package audio

import (
	"math"
	"math/rand"

	"github.com/faiface/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

func durationToSamples(sec float64) int {
	return int(sec * float64(sampleRate))
}

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := range buf {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}
		phase += phaseInc
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// applyEnvelope applies a linear attack and exponential-ish release in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attack := min(durationToSamples(attackSec), total)
	release := min(durationToSamples(releaseSec), total-attack)
	releaseStart := total - release

	for i := 0; i < attack; i++ {
		buf[i] *= float64(i) / float64(attack)
	}
	for i := releaseStart; i < total; i++ {
		left := float64(total-i) / float64(release)
		buf[i] *= left * left
	}
}

func mix(a, b floatBuffer, bScale float64) floatBuffer {
	out := make(floatBuffer, max(len(a), len(b)))
	copy(out, a)
	for i, v := range b {
		out[i] += v * bScale
	}
	return out
}

func concat(parts ...floatBuffer) floatBuffer {
	var out floatBuffer
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func gain(buf floatBuffer, g float64) floatBuffer {
	for i := range buf {
		buf[i] *= g
	}
	return buf
}

// tickSound is one click of the wheel passing a peg, padded with silence so
// looping it gives a steady ratchet.
func tickSound() floatBuffer {
	click := mix(oscillator(waveNoise, 0, durationToSamples(0.012)), oscillator(waveSquare, 1800, durationToSamples(0.012)), 0.4)
	applyEnvelope(click, 0.001, 0.010)
	return concat(gain(click, 0.5), make(floatBuffer, durationToSamples(0.09)))
}

// fanfareSound is a rising major arpeggio.
func fanfareSound() floatBuffer {
	var out floatBuffer
	for _, freq := range []float64{523.25, 659.25, 783.99, 1046.5} {
		note := mix(oscillator(waveSine, freq, durationToSamples(0.16)), oscillator(waveSquare, freq, durationToSamples(0.16)), 0.15)
		applyEnvelope(note, 0.005, 0.08)
		out = concat(out, gain(note, 0.6))
	}
	tail := oscillator(waveSine, 1046.5, durationToSamples(0.6))
	applyEnvelope(tail, 0.01, 0.5)
	return concat(out, gain(tail, 0.5))
}

// bellSound is a struck chord with a long release.
func bellSound() floatBuffer {
	n := durationToSamples(1.2)
	chord := oscillator(waveSine, 880, n)
	chord = mix(chord, oscillator(waveSine, 1108.73, n), 0.7)
	chord = mix(chord, oscillator(waveSine, 1318.51, n), 0.5)
	applyEnvelope(chord, 0.003, 1.1)
	return gain(chord, 0.35)
}

// toStreamer plays buf as stereo, then ends.
func toStreamer(buf floatBuffer) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(buf) {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < len(buf) {
			v := math.Max(-1, math.Min(1, buf[pos]))
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}
