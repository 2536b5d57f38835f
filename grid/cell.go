// Package grid holds the character matrix the game draws into and the sparse
// cell groups entities use to describe themselves.
package grid

import (
	"github.com/lixenwraith/term-snake/terminal"
)

// Kind classifies what occupies a cell, driving collision decisions
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSolid
	KindFruit
	KindSnake
)

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindFruit:
		return "fruit"
	case KindSnake:
		return "snake"
	}
	return "empty"
}

// Cell is one glyph with colors; cells are replaced wholesale, never mutated
type Cell struct {
	Glyph rune
	Fg    terminal.RGB
	Bg    terminal.RGB
	Kind  Kind
}

// Empty is the blank cell: space on black with a white foreground
func Empty() Cell {
	return Cell{Glyph: ' ', Fg: terminal.RGBWhite, Bg: terminal.RGBBlack, Kind: KindEmpty}
}

// Solid returns a non-walkable cell with the given glyph and colors
func Solid(glyph rune, fg, bg terminal.RGB) Cell {
	return Cell{Glyph: glyph, Fg: fg, Bg: bg, Kind: KindSolid}
}

// Position is a cell coordinate in matrix space
type Position struct {
	X, Y uint16
}

// Pos builds a Position from ints; negative inputs wrap and land out of bounds
func Pos(x, y int) Position {
	return Position{X: uint16(x), Y: uint16(y)}
}

// Translate returns the position moved by (dx, dy)
func (p Position) Translate(dx, dy int) Position {
	return Pos(int(p.X)+dx, int(p.Y)+dy)
}
