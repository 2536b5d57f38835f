package ui

import (
	"testing"

	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

var testStyle = ButtonStyle{
	Fg:         terminal.RGBWhite,
	Bg:         terminal.RGBBlack,
	SelectedFg: terminal.RGBBlack,
	SelectedBg: terminal.RGBWhite,
}

func newTestSelector() *Selector {
	s := NewSelector()
	s.Add(NewButton("start", Offset{0, -5}, Center, "START", 80, 45, testStyle, event.Start))
	s.Add(NewButton("exit", Offset{0, -3}, Center, "EXIT", 80, 45, testStyle, event.Exit))
	return s
}

func TestButtonLabelPadded(t *testing.T) {
	b := NewButton("start", Offset{}, TopLeft, "START", 80, 45, testStyle, event.Start)
	if got := b.Text().String(); got != " START " {
		t.Errorf("Expected padded label, got %q", got)
	}
	if b.Event() != event.Start {
		t.Errorf("Expected start event, got %v", b.Event())
	}
}

func TestSelectorFirstSelected(t *testing.T) {
	s := newTestSelector()
	if s.Selected() != 0 {
		t.Errorf("Expected first button selected, got %d", s.Selected())
	}
	if !s.Buttons()[0].Selected() || s.Buttons()[1].Selected() {
		t.Error("Expected only the first button marked selected")
	}
	fg, bg := s.Buttons()[0].Text().Colors()
	if fg != testStyle.SelectedFg || bg != testStyle.SelectedBg {
		t.Error("Expected selected colors on first button")
	}
}

func TestSelectorNavigation(t *testing.T) {
	m := grid.NewMatrix(80, 45)
	s := newTestSelector()

	if ev := s.Update(terminal.Event{Key: terminal.KeyUp}, m); ev != event.None {
		t.Errorf("Expected None, got %v", ev)
	}
	if s.Selected() != 0 {
		t.Errorf("Expected selection clamped at 0, got %d", s.Selected())
	}

	s.Update(terminal.Event{Key: terminal.KeyDown}, m)
	s.Update(terminal.Event{Key: terminal.KeyDown}, m)
	if s.Selected() != 1 {
		t.Errorf("Expected selection clamped at 1, got %d", s.Selected())
	}
	if m.Pending() == 0 {
		t.Error("Expected selection change to redraw buttons")
	}

	// Exit button row now uses selected colors
	x, y := s.Buttons()[1].Text().Origin()
	c, _ := m.Cell(grid.Pos(x, y))
	if c.Bg != testStyle.SelectedBg {
		t.Errorf("Expected selected background on exit button, got %v", c.Bg)
	}

	if ev := s.Update(terminal.Event{Key: terminal.KeyEnter}, m); ev != event.Exit {
		t.Errorf("Expected Exit on enter, got %v", ev)
	}

	s.Reset()
	if s.Selected() != 0 || s.Buttons()[1].Selected() {
		t.Error("Expected reset to first button")
	}
}

func TestSelectorIgnoresOtherKeys(t *testing.T) {
	m := grid.NewMatrix(80, 45)
	s := newTestSelector()

	if ev := s.Update(terminal.Event{Key: terminal.KeyRune, Rune: 'q'}, m); ev != event.None {
		t.Errorf("Expected None, got %v", ev)
	}
	if ev := NewSelector().Update(terminal.Event{Key: terminal.KeyEnter}, m); ev != event.None {
		t.Errorf("Expected None from empty selector, got %v", ev)
	}
}
