package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/config"
)

// speakerBuffer is the speaker latency budget
const speakerBuffer = 100 * time.Millisecond

// Engine plays effects through a shared mixer on the system speaker
type Engine struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	log         zerolog.Logger
	initialized bool

	// lock and init are swapped in tests to avoid touching a real device
	lock   func()
	unlock func()
	init   func(beep.SampleRate, int) error
	play   func(...beep.Streamer)
}

// NewEngine creates an engine; Start must be called before sounds play
func NewEngine(cfg config.AudioConfig, log zerolog.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		log:    log,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
		init:   speaker.Init,
		play:   speaker.Play,
	}
}

// Start opens the speaker. A disabled engine starts silently.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized || !e.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(e.cfg.SampleRate)
	if err := e.init(rate, rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio speaker init: %w", err)
	}

	e.play(e.mixer)
	e.initialized = true
	e.log.Debug().Int("sample_rate", e.cfg.SampleRate).Float64("volume", e.cfg.MasterVolume).Msg("audio started")
	return nil
}

// Play queues an effect on the mixer
func (e *Engine) Play(s SoundType) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.cfg.MasterVolume <= 0 {
		return false
	}

	streamer := GetSoundEffect(s, e.cfg)
	if streamer == nil {
		return false
	}

	e.lock()
	e.mixer.Add(streamer)
	e.unlock()
	return true
}

// Stop drops every playing effect
// beep has no speaker close; clearing the mixer silences output
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	e.lock()
	cut := e.mixer.Len()
	e.mixer.Clear()
	e.unlock()
	e.initialized = false
	e.log.Debug().Int("cut", cut).Msg("audio stopped")
}

// active reports the number of effects still playing
func (e *Engine) active() int {
	e.lock()
	defer e.unlock()
	return e.mixer.Len()
}

// NewPlayer starts an engine for cfg, falling back to Nop when audio is off or the device fails
func NewPlayer(cfg config.AudioConfig, log zerolog.Logger) (Player, func()) {
	if !cfg.Enabled {
		return Nop{}, func() {}
	}
	e := NewEngine(cfg, log)
	if err := e.Start(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing silently")
		return Nop{}, func() {}
	}
	return e, e.Stop
}
