package ui

import (
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

// Selector is a vertical list of buttons with one selected
type Selector struct {
	buttons  []*Button
	selected int
}

func NewSelector() *Selector {
	return &Selector{}
}

// Add appends a button; the first one added starts selected
func (s *Selector) Add(b *Button) {
	s.buttons = append(s.buttons, b)
	if len(s.buttons) == 1 {
		b.Select()
	}
}

// Selected returns the index of the selected button
func (s *Selector) Selected() int {
	return s.selected
}

func (s *Selector) Buttons() []*Button {
	return s.buttons
}

// Update moves the selection on Up/Down (clamped) and returns the selected button's event on Enter
// A moved selection is redrawn into m immediately.
func (s *Selector) Update(key terminal.Event, m *grid.Matrix) event.Type {
	if len(s.buttons) == 0 {
		return event.None
	}

	switch key.Key {
	case terminal.KeyUp:
		if s.selected > 0 {
			s.moveTo(s.selected-1, m)
		}
	case terminal.KeyDown:
		if s.selected < len(s.buttons)-1 {
			s.moveTo(s.selected+1, m)
		}
	case terminal.KeyEnter:
		return s.buttons[s.selected].Event()
	}
	return event.None
}

// Reset selects the first button
func (s *Selector) Reset() {
	if len(s.buttons) == 0 || s.selected == 0 {
		return
	}
	s.buttons[s.selected].Deselect()
	s.selected = 0
	s.buttons[0].Select()
}

func (s *Selector) Render(m *grid.Matrix) {
	for _, b := range s.buttons {
		b.Render(m)
	}
}

func (s *Selector) moveTo(i int, m *grid.Matrix) {
	s.buttons[s.selected].Deselect()
	s.selected = i
	s.buttons[s.selected].Select()
	s.Render(m)
}
