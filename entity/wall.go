package entity

import (
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/grid"
)

// Wall outlines the matrix border with heavy box-drawing glyphs
type Wall struct {
	group *grid.Group
}

// NewWall builds the border for a width x height matrix
func NewWall(width, height int, palette config.Palette) *Wall {
	g := grid.NewGroup()
	cell := func(r rune) grid.Cell {
		return grid.Solid(r, palette.Wall, palette.Background)
	}

	g.SetCell(grid.Pos(0, 0), cell('┏'))
	g.SetCell(grid.Pos(width-1, 0), cell('┓'))
	g.SetCell(grid.Pos(0, height-1), cell('┗'))
	g.SetCell(grid.Pos(width-1, height-1), cell('┛'))

	for x := 1; x < width-1; x++ {
		g.SetCell(grid.Pos(x, 0), cell('━'))
		g.SetCell(grid.Pos(x, height-1), cell('━'))
	}
	for y := 1; y < height-1; y++ {
		g.SetCell(grid.Pos(0, y), cell('┃'))
		g.SetCell(grid.Pos(width-1, y), cell('┃'))
	}

	return &Wall{group: g}
}

func (w *Wall) Render(m *grid.Matrix) {
	w.group.Render(m)
}

// Len returns the number of border cells
func (w *Wall) Len() int {
	return w.group.Len()
}
