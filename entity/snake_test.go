package entity

import (
	"testing"

	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

func testPalette(t *testing.T) config.Palette {
	t.Helper()
	p, err := config.Default().Theme.Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve default theme: %v", err)
	}
	return p
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(grid.Pos(40, 22), 4, 25, testPalette(t))

	if s.Len() != 4 {
		t.Fatalf("Expected length 4, got %d", s.Len())
	}
	if s.Direction() != Up {
		t.Errorf("Expected facing Up, got %v", s.Direction())
	}
	for i, pos := range s.Body() {
		if pos != grid.Pos(40, 22+i) {
			t.Errorf("Segment %d: expected (40,%d), got %+v", i, 22+i, pos)
		}
	}
}

func TestMoveForwardAccumulates(t *testing.T) {
	s := NewSnake(grid.Pos(10, 10), 3, 10, testPalette(t))

	// 10 cells/s needs 0.1s of travel
	if _, moved := s.MoveForward(0.05); moved {
		t.Error("Expected no step after half a cell")
	}

	head, moved := s.MoveForward(0.05)
	if !moved {
		t.Fatal("Expected a step after a full cell")
	}
	if head != grid.Pos(10, 9) {
		t.Errorf("Expected head at (10,9), got %+v", head)
	}
	if s.Len() != 3 {
		t.Errorf("Expected length unchanged, got %d", s.Len())
	}

	// Accumulator restarted from zero
	if _, moved := s.MoveForward(0.09); moved {
		t.Error("Expected accumulator reset after a step")
	}
}

func TestMoveForwardSingleStepPerCall(t *testing.T) {
	s := NewSnake(grid.Pos(10, 10), 3, 10, testPalette(t))

	// A long frame still advances exactly one cell
	head, moved := s.MoveForward(1.0)
	if !moved || head != grid.Pos(10, 9) {
		t.Errorf("Expected single step to (10,9), got %+v moved=%v", head, moved)
	}
	body := s.Body()
	if body[2] != grid.Pos(10, 11) {
		t.Errorf("Expected tail at (10,11), got %+v", body[2])
	}
}

func TestMoveForwardErasesTail(t *testing.T) {
	m := grid.NewMatrix(20, 20)
	s := NewSnake(grid.Pos(10, 10), 3, 100, testPalette(t))
	s.Render(m)

	if c, _ := m.Cell(grid.Pos(10, 12)); c.Kind != grid.KindSnake {
		t.Fatalf("Expected snake at tail, got %v", c.Kind)
	}

	s.MoveForward(1)
	s.Render(m)

	if c, _ := m.Cell(grid.Pos(10, 12)); c.Kind != grid.KindEmpty {
		t.Errorf("Expected vacated tail erased, got %v", c.Kind)
	}
	if c, _ := m.Cell(grid.Pos(10, 9)); c.Kind != grid.KindSnake {
		t.Errorf("Expected new head drawn, got %v", c.Kind)
	}
}

func TestMoveForwardEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on empty snake")
		}
	}()
	s := NewSnake(grid.Pos(1, 1), 0, 1, config.Palette{})
	s.MoveForward(1)
}

func TestGrow(t *testing.T) {
	s := NewSnake(grid.Pos(10, 10), 4, 10, testPalette(t))
	s.Steer(terminal.Event{Key: terminal.KeyLeft})

	s.Grow()

	if s.Len() != 5 {
		t.Fatalf("Expected length 5, got %d", s.Len())
	}
	if s.Head() != grid.Pos(9, 10) {
		t.Errorf("Expected new head at (9,10), got %+v", s.Head())
	}
	body := s.Body()
	if body[4] != grid.Pos(10, 13) {
		t.Errorf("Expected tail kept at (10,13), got %+v", body[4])
	}
}

func TestSteer(t *testing.T) {
	tests := []struct {
		name    string
		key     terminal.Key
		want    Direction
		changed bool
	}{
		{"reversal rejected", terminal.KeyDown, Up, false},
		{"same heading", terminal.KeyUp, Up, false},
		{"turn left", terminal.KeyLeft, Left, true},
		{"turn right", terminal.KeyRight, Right, true},
		{"non arrow ignored", terminal.KeyEnter, Up, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(grid.Pos(5, 5), 3, 1, config.Palette{})
			changed := s.Steer(terminal.Event{Key: tt.key})
			if changed != tt.changed {
				t.Errorf("Expected changed=%v, got %v", tt.changed, changed)
			}
			if s.Direction() != tt.want {
				t.Errorf("Expected direction %v, got %v", tt.want, s.Direction())
			}
		})
	}
}

func TestRenderShadePattern(t *testing.T) {
	m := grid.NewMatrix(20, 20)
	s := NewSnake(grid.Pos(5, 2), 9, 1, testPalette(t))
	s.Render(m)

	want := []rune{'█', '▓', '▒', '░', '░', '▒', '▓', '█', '█'}
	for i, r := range want {
		c, _ := m.Cell(grid.Pos(5, 2+i))
		if c.Glyph != r {
			t.Errorf("Segment %d: expected %q, got %q", i, r, c.Glyph)
		}
		if c.Fg != (terminal.RGB{G: 255}) {
			t.Errorf("Segment %d: expected green, got %v", i, c.Fg)
		}
	}
}
