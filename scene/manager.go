package scene

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-snake/event"
)

// textFinalScore is the game-over widget showing the score of the finished game
const textFinalScore = "final_score"

type transition struct {
	target   string
	newGame  bool
	showsEnd bool
	redraw   bool // repaint the kept matrix instead of rebuilding it
}

// transitions maps each scene-switching event to its target
var transitions = map[event.Type]transition{
	event.Start:    {target: Gameplay, newGame: true},
	event.Restart:  {target: Gameplay, newGame: true},
	event.Pause:    {target: Paused},
	event.Resume:   {target: Gameplay, redraw: true},
	event.End:      {target: GameOver, showsEnd: true},
	event.GoToMenu: {target: MainMenu},
}

// Manager owns every scene, exactly one of which is current
// Scenes not current are parked by name.
type Manager struct {
	parked  map[string]*Scene
	current *Scene
	exit    bool
	log     zerolog.Logger
}

func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		parked: make(map[string]*Scene),
		log:    log,
	}
}

// Add parks a scene under its name
func (m *Manager) Add(s *Scene) {
	m.parked[s.Name()] = s
}

// Current returns the active scene, nil before the first SetCurrent
func (m *Manager) Current() *Scene {
	return m.current
}

// Scene finds a scene by name whether parked or current
func (m *Manager) Scene(name string) (*Scene, bool) {
	if m.current != nil && m.current.Name() == name {
		return m.current, true
	}
	s, ok := m.parked[name]
	return s, ok
}

// Exit reports whether an Exit event has been handled
func (m *Manager) Exit() bool {
	return m.exit
}

// SetCurrent parks the current scene and activates the named one, rendering it in full
// Unknown names leave the manager unchanged and return false.
func (m *Manager) SetCurrent(name string) bool {
	return m.activate(name, false)
}

// activate switches to the named scene; redraw re-queues its matrix as it was left
func (m *Manager) activate(name string, redraw bool) bool {
	next, ok := m.parked[name]
	if !ok {
		if m.current != nil && m.current.Name() == name {
			m.current.Render()
			return true
		}
		m.log.Warn().Str("scene", name).Msg("unknown scene")
		return false
	}

	delete(m.parked, name)
	prev := ""
	if m.current != nil {
		prev = m.current.Name()
		m.parked[prev] = m.current
	}
	m.current = next

	switch {
	case redraw:
		next.Redraw()
	default:
		if next.menu != nil {
			next.menu.selector.Reset()
		}
		next.Render()
	}

	m.log.Debug().Str("from", prev).Str("to", name).Msg("scene switch")
	return true
}

// Handle applies the transition for ev and returns the updated context
func (m *Manager) Handle(ev event.Type, ctx Context) Context {
	switch ev {
	case event.None:
		return ctx
	case event.Exit:
		m.exit = true
		m.log.Info().Msg("exit requested")
		return ctx
	}

	tr, ok := transitions[ev]
	if !ok {
		return ctx
	}

	if tr.newGame {
		ctx = NewContext()
	}
	if tr.showsEnd {
		m.showFinalScore(ctx.Score)
	}
	m.activate(tr.target, tr.redraw)
	return ctx
}

func (m *Manager) showFinalScore(score uint32) {
	s, ok := m.Scene(GameOver)
	if !ok {
		return
	}
	if t, ok := s.Text(textFinalScore); ok {
		t.SetString(formatFinalScore(score))
	}
}

func formatFinalScore(score uint32) string {
	return fmt.Sprintf("Score: %s", formatScore(score))
}
