package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/dippid-pong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies a linear attack and exponential tail
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	rate     float64 // per-sample decay constant
}

// NewDecay shapes s with a short attack and an exponential fade reaching ~1% at duration
func NewDecay(s beep.Streamer, attack, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	if total < 1 {
		total = 1
	}
	return &decay{
		streamer: s,
		attack:   rate.N(attack),
		rate:     math.Log(100) / float64(total),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-d.rate * float64(d.position))
		if d.position < d.attack && d.attack > 0 {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s with linear gain, zero gain is silent
// math.Log2(0) is -Inf so zero takes the Silent path
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBounceSound is a short blip, pitch scales the base frequency
func CreateBounceSound(cfg Config, pitch float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.BounceDuration

	osc := NewOscillator(440*pitch, d, WaveSquare, rate)
	shaped := NewDecay(osc, 3*time.Millisecond, d, rate)

	return newVolume(shaped, parameter.BounceVolume*cfg.MasterVolume)
}

// CreateScoreSound is a rising two-note chime
func CreateScoreSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := parameter.ScoreDuration / 2

	first := NewDecay(NewOscillator(659.25, half, WaveTriangle, rate), 5*time.Millisecond, half, rate)
	second := NewDecay(NewOscillator(987.77, half, WaveTriangle, rate), 5*time.Millisecond, half, rate)

	return newVolume(beep.Seq(first, second), 0.5*cfg.MasterVolume)
}
