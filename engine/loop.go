// Package engine drives the game: a fixed-rate Chronometer gates a Loop that flushes the current
// scene, feeds it one key and applies the resulting scene transition.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/scene"
	"github.com/lixenwraith/term-snake/terminal"
)

// ErrNoScene is returned when the loop ticks with no current scene
var ErrNoScene = errors.New("no current scene")

// Display is the part of the terminal the loop talks to
type Display interface {
	grid.Sink
	PressedKey() (terminal.Event, bool)
	Flush() error
}

// Loop owns the gameplay context and runs one scene update per ready tick
type Loop struct {
	display Display
	manager *scene.Manager
	clock   *Chronometer
	log     zerolog.Logger

	ctx    scene.Context
	frames uint64
}

func NewLoop(display Display, manager *scene.Manager, clock *Chronometer, log zerolog.Logger) *Loop {
	return &Loop{
		display: display,
		manager: manager,
		clock:   clock,
		log:     log,
		ctx:     scene.NewContext(),
	}
}

// Context returns the gameplay context after the last tick
func (l *Loop) Context() scene.Context {
	return l.ctx
}

// Frames counts ready ticks
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Tick runs one iteration and reports whether the game should exit
// Order: flush pending cells, read one key, update, apply the transition.
func (l *Loop) Tick() (bool, error) {
	if !l.clock.Ready() {
		return false, nil
	}
	l.frames++

	cur := l.manager.Current()
	if cur == nil {
		return true, ErrNoScene
	}

	cur.Flush(l.display)
	if err := l.display.Flush(); err != nil {
		return true, fmt.Errorf("flush frame %d: %w", l.frames, err)
	}

	key, pressed := l.display.PressedKey()
	if pressed && key.Key == terminal.KeyCtrlC {
		l.log.Info().Msg("interrupt")
		l.ctx = l.manager.Handle(event.Exit, l.ctx)
		return true, nil
	}

	ev, ctx := cur.Update(scene.Frame{
		Key:     key,
		Pressed: pressed,
		Delta:   l.clock.Delta(),
		FPS:     l.clock.FPS(),
	}, l.ctx)

	if ev != event.None {
		l.log.Debug().Str("event", ev.String()).Str("scene", cur.Name()).Uint32("score", ctx.Score).Msg("event")
	}
	l.ctx = l.manager.Handle(ev, ctx)

	return l.manager.Exit(), nil
}

// Run ticks until exit, an error or ctx cancellation
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().Dur("frame", l.clock.Frame()).Msg("loop start")
	defer func() {
		l.log.Info().Uint64("frames", l.frames).Msg("loop stop")
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		done, err := l.Tick()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
