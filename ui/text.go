package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

// widthCond measures columns with ambiguous-width glyphs (box drawing, shades) as narrow
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Text is a multi-line block aligned inside the scene area
// The whole box is filled, so short lines are padded with spaces in the text colors.
type Text struct {
	name   string
	anchor Anchor
	offset Offset
	areaW  int
	areaH  int

	content string
	fg      terminal.RGB
	bg      terminal.RGB

	x, y          int
	width, height int
	group         *grid.Group
}

// NewText builds a text box; areaW and areaH are the scene matrix size
func NewText(name string, offset Offset, anchor Anchor, content string, areaW, areaH int, fg, bg terminal.RGB) *Text {
	t := &Text{
		name:    name,
		anchor:  anchor,
		offset:  offset,
		areaW:   areaW,
		areaH:   areaH,
		content: content,
		fg:      fg,
		bg:      bg,
		group:   grid.NewGroup(),
	}
	t.rebuild()
	return t
}

func (t *Text) Name() string {
	return t.name
}

// String returns the current content
func (t *Text) String() string {
	return t.content
}

// Origin returns the top-left cell of the box, possibly negative
func (t *Text) Origin() (int, int) {
	return t.x, t.y
}

// Size returns the box size in cells
func (t *Text) Size() (int, int) {
	return t.width, t.height
}

// Colors returns the foreground and background colors
func (t *Text) Colors() (fg, bg terminal.RGB) {
	return t.fg, t.bg
}

// SetString replaces the content; cells the new box no longer covers are blanked on next Render
func (t *Text) SetString(s string) {
	if s == t.content {
		return
	}
	t.content = s
	t.rebuild()
}

// SetColors recolors the box
func (t *Text) SetColors(fg, bg terminal.RGB) {
	if fg == t.fg && bg == t.bg {
		return
	}
	t.fg, t.bg = fg, bg
	t.rebuild()
}

func (t *Text) Render(m *grid.Matrix) {
	t.group.Render(m)
}

// measure returns the widest line in columns and the line count
func measure(lines []string) (int, int) {
	w := 0
	for _, l := range lines {
		w = max(w, widthCond.StringWidth(l))
	}
	return w, len(lines)
}

func (t *Text) rebuild() {
	lines := strings.Split(t.content, "\n")
	t.width, t.height = measure(lines)
	t.x, t.y = place(t.anchor, t.offset, t.width, t.height, t.areaW, t.areaH)

	t.group.Erase()
	for row, line := range lines {
		col := 0
		for _, r := range line {
			rw := widthCond.RuneWidth(r)
			if rw == 0 {
				continue
			}
			t.set(col, row, r)
			// Wide glyphs own the next column too
			col += rw
		}
		for ; col < t.width; col++ {
			t.set(col, row, ' ')
		}
	}
}

func (t *Text) set(col, row int, r rune) {
	x, y := t.x+col, t.y+row
	if x < 0 || y < 0 {
		return
	}
	t.group.SetCell(grid.Pos(x, y), grid.Solid(r, t.fg, t.bg))
}
