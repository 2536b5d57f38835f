package ui

import (
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

// ButtonStyle holds normal and selected colors
type ButtonStyle struct {
	Fg, Bg                 terminal.RGB
	SelectedFg, SelectedBg terminal.RGB
}

// Button is a padded label that fires an event when confirmed
type Button struct {
	text     *Text
	style    ButtonStyle
	event    event.Type
	selected bool
}

// NewButton builds a button labelled " label "
func NewButton(name string, offset Offset, anchor Anchor, label string, areaW, areaH int, style ButtonStyle, ev event.Type) *Button {
	return &Button{
		text:  NewText(name, offset, anchor, " "+label+" ", areaW, areaH, style.Fg, style.Bg),
		style: style,
		event: ev,
	}
}

func (b *Button) Name() string {
	return b.text.Name()
}

// Event returns the event fired on confirm
func (b *Button) Event() event.Type {
	return b.event
}

// Text exposes the underlying text box
func (b *Button) Text() *Text {
	return b.text
}

func (b *Button) Selected() bool {
	return b.selected
}

func (b *Button) Select() {
	b.selected = true
	b.text.SetColors(b.style.SelectedFg, b.style.SelectedBg)
}

func (b *Button) Deselect() {
	b.selected = false
	b.text.SetColors(b.style.Fg, b.style.Bg)
}

func (b *Button) Render(m *grid.Matrix) {
	b.text.Render(m)
}
