package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/term-snake/config"
)

// Effect timings
const (
	fruitSoundDuration      = 180 * time.Millisecond
	fruitSoundAttack        = 5 * time.Millisecond
	fruitFundamentalRelease = 150 * time.Millisecond
	fruitOvertoneRelease    = 80 * time.Millisecond

	crashSoundDuration = 350 * time.Millisecond
	crashSoundAttack   = 5 * time.Millisecond
	crashSoundRelease  = 300 * time.Millisecond

	selectSoundDuration = 40 * time.Millisecond
	selectSoundAttack   = 2 * time.Millisecond
	selectSoundRelease  = 30 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so zero volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// effectVolume combines master and per-effect volume; unknown effects play at master volume
func effectVolume(cfg config.AudioConfig, s SoundType) float64 {
	v, ok := cfg.EffectVolumes[s.String()]
	if !ok {
		v = 1.0
	}
	return v * cfg.MasterVolume
}

// CreateFruitSound generates a bright ding
func CreateFruitSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (A5)
	fund := NewOscillator(880.0, fruitSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, fruitSoundDuration, fruitSoundAttack, fruitFundamentalRelease, rate)

	// Octave up
	over := NewOscillator(1760.0, fruitSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, fruitSoundDuration, fruitSoundAttack, fruitOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, effectVolume(cfg, SoundFruit))
}

// CreateCrashSound generates a low buzz over a noise burst
func CreateCrashSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewOscillator(100.0, crashSoundDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, crashSoundDuration, crashSoundAttack, crashSoundRelease, rate)

	noise := NewOscillator(0, crashSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, crashSoundDuration, crashSoundAttack, crashSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(buzzShaped, 0.6),
		newVolume(noiseShaped, 0.25),
	)

	return newVolume(mixed, effectVolume(cfg, SoundCrash))
}

// CreateSelectSound generates a short click
func CreateSelectSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(1318.51, selectSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, selectSoundDuration, selectSoundAttack, selectSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundSelect))
}

// GetSoundEffect returns the streamer for the given type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg config.AudioConfig) beep.Streamer {
	switch soundType {
	case SoundFruit:
		return CreateFruitSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	case SoundSelect:
		return CreateSelectSound(cfg)
	default:
		return nil
	}
}
