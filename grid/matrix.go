package grid

import (
	"github.com/lixenwraith/term-snake/terminal"
)

// Sink receives positioned glyph writes; terminal implementations satisfy it
type Sink interface {
	SetCell(x, y int, glyph rune, fg, bg terminal.RGB)
}

// Diff is one queued write awaiting flush
type Diff struct {
	Pos  Position
	Cell Cell
}

// Matrix is a fixed-size row-major cell buffer with an ordered diff log
type Matrix struct {
	width  int
	height int
	cells  []Cell
	diffs  []Diff
}

// NewMatrix creates a matrix filled with Empty cells and no pending diffs
func NewMatrix(width, height int) *Matrix {
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Empty()
	}
	return &Matrix{
		width:  width,
		height: height,
		cells:  cells,
		diffs:  make([]Diff, 0, width*height),
	}
}

// Width returns the matrix width
func (m *Matrix) Width() int {
	return m.width
}

// Height returns the matrix height
func (m *Matrix) Height() int {
	return m.height
}

// InBounds reports whether pos addresses a cell
func (m *Matrix) InBounds(pos Position) bool {
	return int(pos.X) < m.width && int(pos.Y) < m.height
}

// SetCell replaces the cell at pos and queues the write
// Out-of-bounds writes are dropped
func (m *Matrix) SetCell(pos Position, c Cell) {
	if !m.InBounds(pos) {
		return
	}
	m.cells[int(pos.Y)*m.width+int(pos.X)] = c
	m.diffs = append(m.diffs, Diff{Pos: pos, Cell: c})
}

// Cell returns the cell at pos, false when out of bounds
func (m *Matrix) Cell(pos Position) (Cell, bool) {
	if !m.InBounds(pos) {
		return Cell{}, false
	}
	return m.cells[int(pos.Y)*m.width+int(pos.X)], true
}

// Pending returns the number of queued diffs
func (m *Matrix) Pending() int {
	return len(m.diffs)
}

// Diffs returns a copy of the queued diffs in write order
func (m *Matrix) Diffs() []Diff {
	out := make([]Diff, len(m.diffs))
	copy(out, m.diffs)
	return out
}

// Flush delivers every queued diff to the sink in FIFO order, then empties the queue
func (m *Matrix) Flush(sink Sink) {
	for _, d := range m.diffs {
		sink.SetCell(int(d.Pos.X), int(d.Pos.Y), d.Cell.Glyph, d.Cell.Fg, d.Cell.Bg)
	}
	m.diffs = m.diffs[:0]
}

// Clear writes Empty to every cell, queueing one diff per cell
func (m *Matrix) Clear() {
	empty := Empty()
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.SetCell(Pos(x, y), empty)
		}
	}
}

// Redraw queues every current cell unchanged, forcing a full repaint on next flush
func (m *Matrix) Redraw() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.diffs = append(m.diffs, Diff{Pos: Pos(x, y), Cell: m.cells[y*m.width+x]})
		}
	}
}
