package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	_ Terminal = (*Screen)(nil)
	_ Terminal = (*termImpl)(nil)
)

// Screen implements Terminal on top of a tcell.Screen
type Screen struct {
	screen tcell.Screen
	events chan Event
	quit   chan struct{}

	// translate maps tcell keys to game events
	translate func(*tcell.EventKey) (Event, bool)

	mu       sync.Mutex
	started  bool
	finished bool
	cursorX  int
	cursorY  int
}

// NewScreen wraps an uninitialized tcell screen
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen:    s,
		translate: fromTcellKey,
		events:    make(chan Event, 64),
		quit:      make(chan struct{}),
	}
}

// NewTcell creates a Screen on the process terminal
func NewTcell() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return NewScreen(s), nil
}

func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	s.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.screen.Clear()
	s.started = true

	go s.pollLoop()
	return nil
}

// pollLoop translates tcell key events until the screen is finalized
func (s *Screen) pollLoop() {
	defer recoverCrash("tcell poll")

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		e, ok := s.translate(kev)
		if !ok {
			continue
		}
		select {
		case s.events <- e:
		case <-s.quit:
			return
		default:
		}
	}
}

func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.finished {
		return
	}
	close(s.quit)
	s.screen.Fini()
	s.finished = true
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) PressedKey() (Event, bool) {
	select {
	case ev := <-s.events:
		return ev, true
	default:
		return Event{}, false
	}
}

// Write places text starting at the last SetCell position
func (s *Screen) Write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	for _, r := range text {
		s.screen.SetContent(s.cursorX, s.cursorY, r, nil, style)
		s.cursorX++
	}
}

func (s *Screen) SetCell(x, y int, glyph rune, fg, bg RGB) {
	s.mu.Lock()
	defer s.mu.Unlock()

	style := tcell.StyleDefault.Foreground(toTcellColor(fg)).Background(toTcellColor(bg))
	s.screen.SetContent(x, y, glyph, nil, style)
	s.cursorX, s.cursorY = x+1, y
}

func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}

func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

func (s *Screen) ShowCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ShowCursor(s.cursorX, s.cursorY)
}

func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Clear()
	s.screen.Show()
	s.cursorX, s.cursorY = 0, 0
}

func toTcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// fromTcellKey maps the keys the game understands, dropping the rest
func fromTcellKey(ev *tcell.EventKey) (Event, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune()}, true
	case tcell.KeyUp:
		return Event{Key: KeyUp}, true
	case tcell.KeyDown:
		return Event{Key: KeyDown}, true
	case tcell.KeyLeft:
		return Event{Key: KeyLeft}, true
	case tcell.KeyRight:
		return Event{Key: KeyRight}, true
	case tcell.KeyEnter:
		return Event{Key: KeyEnter}, true
	case tcell.KeyEscape:
		return Event{Key: KeyEscape}, true
	case tcell.KeyTab:
		return Event{Key: KeyTab}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace}, true
	case tcell.KeyCtrlC:
		return Event{Key: KeyCtrlC, Modifiers: ModCtrl}, true
	}
	return Event{}, false
}
