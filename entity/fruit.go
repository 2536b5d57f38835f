package entity

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/grid"
)

// FruitGlyph marks a fruit cell
const FruitGlyph = '■'

// Fruit is a single pickup on the playfield
type Fruit struct {
	pos   grid.Position
	group *grid.Group
}

// NewFruit picks a uniformly random Empty cell in [origin, extension) and places a fruit there
// Sampling retries until it finds one, so a full playfield never returns.
func NewFruit(m *grid.Matrix, origin, extension grid.Position, rng *rand.Rand, palette config.Palette) *Fruit {
	w := int(extension.X) - int(origin.X)
	h := int(extension.Y) - int(origin.Y)
	if w <= 0 || h <= 0 {
		panic("entity: empty fruit area")
	}

	var pos grid.Position
	for {
		pos = origin.Translate(rng.Intn(w), rng.Intn(h))
		if c, ok := m.Cell(pos); ok && c.Kind == grid.KindEmpty {
			break
		}
	}

	g := grid.NewGroup()
	g.SetCell(pos, grid.Cell{
		Glyph: FruitGlyph,
		Fg:    palette.Fruit,
		Bg:    palette.Background,
		Kind:  grid.KindFruit,
	})
	return &Fruit{pos: pos, group: g}
}

// Position returns the fruit cell
func (f *Fruit) Position() grid.Position {
	return f.pos
}

func (f *Fruit) Render(m *grid.Matrix) {
	f.group.Render(m)
}
