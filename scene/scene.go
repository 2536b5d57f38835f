// Package scene implements the game screens and the manager switching between them.
package scene

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/entity"
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
	"github.com/lixenwraith/term-snake/ui"
)

// Scene names
const (
	MainMenu = "main_menu"
	Gameplay = "gameplay"
	Paused   = "paused"
	GameOver = "game_over"
)

// Kind tags which payload a Scene carries
type Kind uint8

const (
	KindMenu Kind = iota
	KindGameplay
)

// Frame is the per-tick input handed to Update
type Frame struct {
	Key     terminal.Event
	Pressed bool
	Delta   float64 // seconds since the previous frame
	FPS     float64
}

// Scene owns a matrix, its widgets and either a Menu or a Play payload
type Scene struct {
	name   string
	kind   Kind
	matrix *grid.Matrix
	wall   *entity.Wall
	texts  map[string]*ui.Text
	order  []string // text render order
	log    zerolog.Logger

	menu *Menu
	play *Play
}

func newScene(name string, kind Kind, width, height int, wall *entity.Wall, log zerolog.Logger) *Scene {
	return &Scene{
		name:   name,
		kind:   kind,
		matrix: grid.NewMatrix(width, height),
		wall:   wall,
		texts:  make(map[string]*ui.Text),
		log:    log.With().Str("scene", name).Logger(),
	}
}

func (s *Scene) Name() string {
	return s.name
}

func (s *Scene) Kind() Kind {
	return s.kind
}

// Matrix exposes the scene's cell buffer
func (s *Scene) Matrix() *grid.Matrix {
	return s.matrix
}

// AddText registers a text widget; a name already present is replaced in place
func (s *Scene) AddText(t *ui.Text) {
	if _, ok := s.texts[t.Name()]; !ok {
		s.order = append(s.order, t.Name())
	}
	s.texts[t.Name()] = t
}

// Text looks up a text widget by name
func (s *Scene) Text(name string) (*ui.Text, bool) {
	t, ok := s.texts[name]
	return t, ok
}

// Menu returns the menu payload, nil for gameplay scenes
func (s *Scene) Menu() *Menu {
	return s.menu
}

// Play returns the gameplay payload, nil for menu scenes
func (s *Scene) Play() *Play {
	return s.play
}

// Render repaints the whole scene: clear, wall, texts, then the selector
func (s *Scene) Render() {
	s.matrix.Clear()
	if s.wall != nil {
		s.wall.Render(s.matrix)
	}
	s.renderTexts()
	if s.menu != nil {
		s.menu.selector.Render(s.matrix)
	}
}

// Redraw re-queues every cell unchanged, repainting the scene as it was left
func (s *Scene) Redraw() {
	s.matrix.Redraw()
}

// Flush writes pending matrix diffs to the sink
func (s *Scene) Flush(sink grid.Sink) {
	s.matrix.Flush(sink)
}

// Update advances the scene one tick
func (s *Scene) Update(f Frame, ctx Context) (event.Type, Context) {
	switch s.kind {
	case KindMenu:
		return s.menu.update(s, f), ctx
	case KindGameplay:
		return s.play.update(s, f, ctx)
	}
	return event.None, ctx
}

func (s *Scene) renderTexts() {
	for _, name := range s.order {
		s.texts[name].Render(s.matrix)
	}
}
