// Package audio synthesizes the game's sound effects and plays them through
// the system speaker.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// Sound identifies one of the synthesized effects.
type Sound int

const (
	SoundShot Sound = iota
	SoundHit
	SoundKill
	SoundHurt
)

// sweep is an oscillator whose frequency slides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewSweep returns a streamer of exactly rate.N(duration) samples.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(1, 2)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1.0
			if s.phase >= 0.5 {
				val = -1.0
			}
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay fades a stream out linearly over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewSound builds a fresh streamer for sound at the given volume in [0, 1].
func NewSound(sound Sound, vol float64) beep.Streamer {
	var s beep.Streamer
	var d time.Duration

	switch sound {
	case SoundShot:
		d = 60 * time.Millisecond
		s = NewSweep(900, 300, d, WaveSquare, sampleRate)
		vol *= 0.3
	case SoundHit:
		d = 40 * time.Millisecond
		s = NewSweep(0, 0, d, WaveNoise, sampleRate)
		vol *= 0.4
	case SoundKill:
		d = 180 * time.Millisecond
		s = beep.Mix(
			NewSweep(220, 55, d, WaveSquare, sampleRate),
			newVolume(NewSweep(0, 0, d, WaveNoise, sampleRate), 0.5),
		)
		vol *= 0.35
	case SoundHurt:
		d = 120 * time.Millisecond
		s = NewSweep(140, 90, d, WaveSine, sampleRate)
		vol *= 0.6
	default:
		return beep.Silence(0)
	}

	return newVolume(newDecay(s, d, sampleRate), vol)
}
