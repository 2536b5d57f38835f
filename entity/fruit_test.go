package entity

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

func TestFruitOnEmptyOnly(t *testing.T) {
	m := grid.NewMatrix(6, 6)
	wall := NewWall(6, 6, testPalette(t))
	wall.Render(m)

	// Fill the interior except one cell
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			if x == 3 && y == 2 {
				continue
			}
			m.SetCell(grid.Pos(x, y), grid.Solid('#', terminal.RGBWhite, terminal.RGBBlack))
		}
	}

	rng := rand.New(rand.NewSource(42))
	f := NewFruit(m, grid.Pos(1, 1), grid.Pos(5, 5), rng, testPalette(t))

	if f.Position() != grid.Pos(3, 2) {
		t.Errorf("Expected fruit at only empty cell (3,2), got %+v", f.Position())
	}

	f.Render(m)
	c, _ := m.Cell(grid.Pos(3, 2))
	if c.Kind != grid.KindFruit || c.Glyph != FruitGlyph {
		t.Errorf("Expected fruit cell, got %+v", c)
	}
	if c.Fg != terminal.RGBRed {
		t.Errorf("Expected red fruit, got %v", c.Fg)
	}
}

func TestFruitWithinArea(t *testing.T) {
	m := grid.NewMatrix(80, 45)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		f := NewFruit(m, grid.Pos(1, 1), grid.Pos(79, 44), rng, testPalette(t))
		p := f.Position()
		if p.X < 1 || p.X >= 79 || p.Y < 1 || p.Y >= 44 {
			t.Fatalf("Fruit outside area: %+v", p)
		}
	}
}
