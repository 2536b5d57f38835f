package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/term-snake/terminal"
)

// Palette is the resolved set of colors entities and widgets draw with
type Palette struct {
	Wall       terminal.RGB
	SnakeHead  terminal.RGB
	SnakeTail  terminal.RGB
	Fruit      terminal.RGB
	Text       terminal.RGB
	Background terminal.RGB
	SelectedFg terminal.RGB
	SelectedBg terminal.RGB
	Accent     terminal.RGB // menu titles
	Alert      terminal.RGB // game over title
	Info       terminal.RGB
}

// Resolve parses every theme color
func (t Theme) Resolve() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *terminal.RGB
	}{
		{"wall", t.Wall, &p.Wall},
		{"snake_head", t.SnakeHead, &p.SnakeHead},
		{"snake_tail", t.SnakeTail, &p.SnakeTail},
		{"fruit", t.Fruit, &p.Fruit},
		{"text", t.Text, &p.Text},
		{"background", t.Background, &p.Background},
		{"selected_fg", t.SelectedFg, &p.SelectedFg},
		{"selected_bg", t.SelectedBg, &p.SelectedBg},
		{"accent", t.Accent, &p.Accent},
		{"alert", t.Alert, &p.Alert},
		{"info", t.Info, &p.Info},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: theme.%s %q: %v", ErrInvalid, f.name, f.hex, err)
		}
		*f.dst = toRGB(c)
	}
	return p, nil
}

// SnakeShade blends head to tail color for segment i of n in Lab space
func (p Palette) SnakeShade(i, n int) terminal.RGB {
	if n <= 1 || p.SnakeHead == p.SnakeTail {
		return p.SnakeHead
	}
	head := fromRGB(p.SnakeHead)
	tail := fromRGB(p.SnakeTail)
	return toRGB(head.BlendLab(tail, float64(i)/float64(n-1)).Clamped())
}

func toRGB(c colorful.Color) terminal.RGB {
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

func fromRGB(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
