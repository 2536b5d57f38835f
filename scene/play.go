package scene

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/entity"
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/grid"
	"github.com/lixenwraith/term-snake/terminal"
)

// Gameplay text widget names
const (
	textScoreLabel = "score_label"
	textScore      = "score"
	textFPS        = "fps"
)

// Play is the payload of the gameplay scene
type Play struct {
	cfg    *config.Config
	rng    *rand.Rand
	sounds audio.Player

	snake *entity.Snake
	fruit *entity.Fruit

	shownScore uint32
	shownFPS   int
}

// Snake returns the current snake, nil before the first game
func (p *Play) Snake() *entity.Snake {
	return p.snake
}

// Fruit returns the current fruit, nil before the first game
func (p *Play) Fruit() *entity.Fruit {
	return p.fruit
}

func (p *Play) update(s *Scene, f Frame, ctx Context) (event.Type, Context) {
	if ctx.StartNewGame {
		p.newGame(s)
		return event.None, ctx.Started()
	}

	p.updateFPS(s, f.FPS)

	if p.snake == nil {
		return event.None, ctx
	}

	m := s.matrix
	p.snake.Render(m)
	p.fruit.Render(m)

	if f.Pressed {
		if f.Key.Key == terminal.KeyEscape {
			return event.Pause, ctx
		}
		p.snake.Steer(f.Key)
	}

	head, moved := p.snake.MoveForward(f.Delta)
	if !moved {
		return event.None, ctx
	}

	cell, ok := m.Cell(head)
	if !ok {
		return p.crash(s, ctx, "out_of_bounds"), ctx
	}

	switch cell.Kind {
	case grid.KindSolid, grid.KindSnake:
		return p.crash(s, ctx, cell.Kind.String()), ctx

	case grid.KindFruit:
		p.snake.Grow()
		p.snake.Render(m)
		p.fruit = p.placeFruit(m)
		ctx = ctx.Scored()
		p.setScore(s, ctx.Score)
		p.sounds.Play(audio.SoundFruit)
		s.log.Debug().Uint32("score", ctx.Score).Int("length", p.snake.Len()).Msg("fruit eaten")
	}

	return event.None, ctx
}

// newGame rebuilds snake and fruit; the snake is drawn before the fruit is placed
func (p *Play) newGame(s *Scene) {
	m := s.matrix
	center := grid.Pos(m.Width()/2, m.Height()/2)

	p.snake = entity.NewSnake(center, p.cfg.InitialLength, p.cfg.SnakeSpeed, p.cfg.Palette)
	p.snake.Render(m)
	p.fruit = p.placeFruit(m)
	p.fruit.Render(m)
	p.setScore(s, 0)

	s.log.Info().Int("width", m.Width()).Int("height", m.Height()).Msg("new game")
}

func (p *Play) placeFruit(m *grid.Matrix) *entity.Fruit {
	origin := grid.Pos(1, 1)
	extension := grid.Pos(m.Width()-1, m.Height()-1)
	return entity.NewFruit(m, origin, extension, p.rng, p.cfg.Palette)
}

func (p *Play) crash(s *Scene, ctx Context, cause string) event.Type {
	p.sounds.Play(audio.SoundCrash)
	s.log.Info().Uint32("score", ctx.Score).Str("cause", cause).Msg("game over")
	return event.End
}

// setScore re-renders the score text only when the value changed
func (p *Play) setScore(s *Scene, score uint32) {
	if score == p.shownScore {
		return
	}
	p.shownScore = score
	if t, ok := s.Text(textScore); ok {
		t.SetString(formatScore(score))
		t.Render(s.matrix)
	}
}

func (p *Play) updateFPS(s *Scene, fps float64) {
	n := int(math.Round(fps))
	if n == p.shownFPS {
		return
	}
	p.shownFPS = n
	if t, ok := s.Text(textFPS); ok {
		t.SetString(formatFPS(n))
		t.Render(s.matrix)
	}
}

func formatScore(score uint32) string {
	return fmt.Sprintf("%010d", score)
}

func formatFPS(n int) string {
	return fmt.Sprintf(" %3d FPS ", min(max(n, 0), 999))
}
