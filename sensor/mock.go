package sensor

import (
	"context"
	"log/slog"
	"math"
	"net"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Waveform names accepted in WaveSpec.Wave
const (
	WaveSine   = "sin"
	WaveCosine = "cos"
	WaveSquare = "square"
	WaveSaw    = "saw"
	WaveNoise  = "noise"
	WaveConst  = "const"
)

// WaveSpec describes one generated axis: value = Offset + Amplitude * wave(t)
// Periodic waves are normalized to [0, 1]; Button reports 1 only at a local maximum of the wave
type WaveSpec struct {
	Wave      string  `toml:"wave"`
	Amplitude float64 `toml:"amplitude"`
	Offset    float64 `toml:"offset"`
	Period    float64 `toml:"period"`
	Phase     float64 `toml:"phase"`
	Button    bool    `toml:"button"`
}

// MockConfig maps capability to axis to spec, axis ScalarKey yields a bare number
type MockConfig map[string]map[string]WaveSpec

// DefaultMockConfig tilts the phone back and forth and presses button_1 periodically
func DefaultMockConfig() MockConfig {
	return MockConfig{
		"gravity": {
			"x": {Wave: WaveConst},
			"y": {Wave: WaveConst},
			"z": {Wave: WaveSine, Amplitude: 19.62, Offset: -9.81, Period: 4},
		},
		"button_1": {
			ScalarKey: {Wave: WaveSine, Period: 2, Button: true},
		},
	}
}

type buttonState struct {
	values [3]float64
	n      int
}

// update shifts in v and reports a local maximum at the middle sample
func (b *buttonState) update(v float64) bool {
	b.values[2], b.values[1], b.values[0] = b.values[1], b.values[0], v
	if b.n < 3 {
		b.n++
	}
	if b.n < 3 {
		return false
	}
	return b.values[0] < b.values[1] && b.values[1] > b.values[2]
}

// Generator produces capability readings from wave specs
type Generator struct {
	config   MockConfig
	buttons  map[string]*buttonState
	rng      *rand.Rand
	truncate int
}

// NewGenerator validates config; truncate < 0 keeps full precision
func NewGenerator(config MockConfig, seed uint64, truncate int) (*Generator, error) {
	for capability, axes := range config {
		if len(axes) == 0 {
			return nil, errors.Errorf("capability %q has no axes", capability)
		}
		for axis, spec := range axes {
			switch spec.Wave {
			case WaveSine, WaveCosine, WaveSquare, WaveSaw:
				if spec.Period <= 0 {
					return nil, errors.Errorf("%s.%s: periodic wave %q needs a positive period", capability, axis, spec.Wave)
				}
			case WaveNoise, WaveConst:
			default:
				return nil, errors.Errorf("%s.%s: unknown wave %q", capability, axis, spec.Wave)
			}
		}
	}
	return &Generator{
		config:   config,
		buttons:  make(map[string]*buttonState),
		rng:      rand.New(rand.NewSource(seed)),
		truncate: truncate,
	}, nil
}

// wave returns the normalized wave value at t seconds
func (g *Generator) wave(spec WaveSpec, t float64) float64 {
	if spec.Wave == WaveConst {
		return 0
	}
	if spec.Wave == WaveNoise {
		return g.rng.Float64()
	}
	phase := t/spec.Period + spec.Phase
	switch spec.Wave {
	case WaveSine:
		return 0.5 * (1 + math.Sin(2*math.Pi*phase))
	case WaveCosine:
		return 0.5 * (1 + math.Cos(2*math.Pi*phase))
	case WaveSquare:
		if phase-math.Floor(phase) < 0.5 {
			return 1
		}
		return 0
	default:
		return phase - math.Floor(phase)
	}
}

// Sample evaluates every axis at t seconds since start
// Capabilities and axes are visited in sorted order so noise draws are reproducible per seed
func (g *Generator) Sample(t float64) map[string]Reading {
	out := make(map[string]Reading, len(g.config))
	for _, capability := range sortedKeys(g.config) {
		axes := g.config[capability]
		r := make(Reading, len(axes))
		for _, axis := range sortedKeys(axes) {
			spec := axes[axis]
			base := g.wave(spec, t)

			var v float64
			if spec.Button {
				key := capability + "." + axis
				b, ok := g.buttons[key]
				if !ok {
					b = &buttonState{}
					g.buttons[key] = b
				}
				if b.update(base) {
					v = 1
				}
			} else {
				v = spec.Offset + spec.Amplitude*base
			}
			r[axis] = g.round(v)
		}
		out[capability] = r
	}
	return out
}

func (g *Generator) round(v float64) float64 {
	if g.truncate < 0 {
		return v
	}
	p := math.Pow(10, float64(g.truncate))
	return math.Round(v*p) / p
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sender pushes generated datagrams to a UDP address on a fixed interval
type Sender struct {
	gen      *Generator
	addr     string
	interval time.Duration
	verbose  bool
	logger   *slog.Logger
}

// NewSender creates a sender, interval must be positive
func NewSender(gen *Generator, addr string, interval time.Duration, verbose bool) (*Sender, error) {
	if interval <= 0 {
		return nil, errors.Errorf("send interval must be positive, got %v", interval)
	}
	return &Sender{
		gen:      gen,
		addr:     addr,
		interval: interval,
		verbose:  verbose,
		logger:   slog.Default().With("component", "sensor-mock", "addr", addr),
	}, nil
}

// Run sends until ctx is cancelled
func (s *Sender) Run(ctx context.Context) error {
	conn, err := net.Dial("udp", s.addr)
	if err != nil {
		return errors.Wrapf(err, "dial %s", s.addr)
	}
	defer conn.Close()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	start := time.Now()

	for {
		t := time.Since(start).Seconds()
		data, err := Encode(s.gen.Sample(t))
		if err != nil {
			return err
		}
		if _, err := conn.Write(data); err != nil {
			// Nothing listening yet is expected, keep sending
			s.logger.Debug("send failed", "error", err)
		} else if s.verbose {
			s.logger.Info("sent", "t", t, "payload", string(data))
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
