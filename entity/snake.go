// Package entity holds the playfield objects: the snake, the fruit and the border wall.
package entity

import (
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

// Direction is the snake's heading
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the unit step for the direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 1, 0
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}
	return Left
}

// shadePatterns alternate every four segments along the body
var shadePatterns = [2][4]rune{
	{'█', '▓', '▒', '░'},
	{'░', '▒', '▓', '█'},
}

// Snake is the player body, head first
type Snake struct {
	body    []grid.Position
	dir     Direction
	speed   float64 // cells per second
	acc     float64 // seconds since last step
	group   *grid.Group
	palette config.Palette
}

// NewSnake places a snake of the given length with its head at head, body extending downward, facing Up
func NewSnake(head grid.Position, length int, speed float64, palette config.Palette) *Snake {
	body := make([]grid.Position, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, head.Translate(0, i))
	}
	return &Snake{
		body:    body,
		dir:     Up,
		speed:   speed,
		group:   grid.NewGroup(),
		palette: palette,
	}
}

// Head returns the head position
func (s *Snake) Head() grid.Position {
	return s.body[0]
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []grid.Position {
	out := make([]grid.Position, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() Direction {
	return s.dir
}

// Steer turns the snake on arrow keys, ignoring reversal and other keys
// Returns true when the heading changed
func (s *Snake) Steer(ev terminal.Event) bool {
	var want Direction
	switch ev.Key {
	case terminal.KeyUp:
		want = Up
	case terminal.KeyDown:
		want = Down
	case terminal.KeyLeft:
		want = Left
	case terminal.KeyRight:
		want = Right
	default:
		return false
	}
	if want == s.dir.Opposite() || want == s.dir {
		return false
	}
	s.dir = want
	return true
}

// MoveForward accumulates dt seconds and steps one cell once a full cell of travel has built up
// The accumulator resets to zero on a step; leftover time is dropped.
func (s *Snake) MoveForward(dt float64) (grid.Position, bool) {
	if len(s.body) == 0 {
		panic("entity: MoveForward on empty snake")
	}

	s.acc += dt
	if s.acc*s.speed < 1 {
		return grid.Position{}, false
	}
	s.acc = 0

	head := s.nextHead()
	last := len(s.body) - 1
	tail := s.body[last]

	copy(s.body[1:], s.body[:last])
	s.body[0] = head
	s.group.SetCell(tail, grid.Empty())

	return head, true
}

// Grow prepends one segment in the facing direction without dropping the tail
func (s *Snake) Grow() {
	s.body = append(s.body, grid.Position{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = s.body[1].Translate(s.dir.Delta())
}

// Render writes every segment into the matrix and erases vacated tail cells once
func (s *Snake) Render(m *grid.Matrix) {
	n := len(s.body)
	for i, pos := range s.body {
		pattern := (i / 4) % 2
		s.group.SetCell(pos, grid.Cell{
			Glyph: shadePatterns[pattern][i%4],
			Fg:    s.palette.SnakeShade(i, n),
			Bg:    s.palette.Background,
			Kind:  grid.KindSnake,
		})
	}
	s.group.Render(m)
}

func (s *Snake) nextHead() grid.Position {
	return s.body[0].Translate(s.dir.Delta())
}
