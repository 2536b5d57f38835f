package scene

import (
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/entity"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

const (
	testWidth  = 40
	testHeight = 20
)

type recordingPlayer struct {
	played []audio.SoundType
}

func (r *recordingPlayer) Play(s audio.SoundType) bool {
	r.played = append(r.played, s)
	return true
}

func (r *recordingPlayer) count(s audio.SoundType) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

func testDeps(t *testing.T) (Deps, *recordingPlayer) {
	t.Helper()
	cfg := config.Default()
	palette, err := cfg.Theme.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	cfg.Palette = palette

	sounds := &recordingPlayer{}
	return Deps{
		Width:  testWidth,
		Height: testHeight,
		Config: &cfg,
		Sounds: sounds,
		Rand:   rand.New(rand.NewSource(7)),
		Log:    zerolog.Nop(),
	}, sounds
}

func press(k terminal.Key) Frame {
	return Frame{Key: terminal.Event{Key: k}, Pressed: true}
}

// startGame runs the first gameplay update and moves the fruit into the top-left corner
func startGame(t *testing.T, s *Scene) Context {
	t.Helper()
	s.Render()
	_, ctx := s.Update(Frame{}, NewContext())
	moveFruit(s, grid.Pos(1, 1))
	return ctx
}

// moveFruit replaces the fruit with one at pos and repaints the scene without the old one
func moveFruit(s *Scene, pos grid.Position) {
	p := s.play
	s.matrix.Clear()
	p.fruit = entity.NewFruit(s.matrix, pos, pos.Translate(1, 1), p.rng, p.cfg.Palette)
	s.Render()
}
