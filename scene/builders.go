package scene

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/entity"
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/terminal"
	"github.com/lixenwraith/term-snake/ui"
)

// Deps carries what every scene builder needs
type Deps struct {
	Width, Height int
	Config        *config.Config
	Sounds        audio.Player
	Rand          *rand.Rand
	Log           zerolog.Logger
}

func (d Deps) sounds() audio.Player {
	if d.Sounds == nil {
		return audio.Nop{}
	}
	return d.Sounds
}

func (d Deps) buttonStyle() ui.ButtonStyle {
	p := d.Config.Palette
	return ui.ButtonStyle{
		Fg:         p.Text,
		Bg:         p.Background,
		SelectedFg: p.SelectedFg,
		SelectedBg: p.SelectedBg,
	}
}

func (d Deps) text(name string, off ui.Offset, anchor ui.Anchor, content string, fg terminal.RGB) *ui.Text {
	return ui.NewText(name, off, anchor, content, d.Width, d.Height, fg, d.Config.Palette.Background)
}

func (d Deps) button(name string, off ui.Offset, label string, ev event.Type) *ui.Button {
	return ui.NewButton(name, off, ui.Center, label, d.Width, d.Height, d.buttonStyle(), ev)
}

func (d Deps) menuScene(name string, buttons ...*ui.Button) *Scene {
	s := newScene(name, KindMenu, d.Width, d.Height, entity.NewWall(d.Width, d.Height, d.Config.Palette), d.Log)
	sel := ui.NewSelector()
	for _, b := range buttons {
		sel.Add(b)
	}
	s.menu = &Menu{selector: sel, sounds: d.sounds()}
	return s
}

// BuildMainMenu builds the title screen with START and EXIT
func BuildMainMenu(d Deps) *Scene {
	p := d.Config.Palette
	s := d.menuScene(MainMenu,
		d.button("start", ui.Offset{X: 0, Y: -5}, "START", event.Start),
		d.button("exit", ui.Offset{X: 0, Y: -3}, "EXIT", event.Exit),
	)
	s.AddText(d.text("backdrop", ui.Offset{X: 0, Y: 10}, ui.Center, backdrop, p.Accent))
	s.AddText(d.text("title", ui.Offset{X: 0, Y: 5}, ui.Top, titleSnake, p.Accent))
	s.AddText(d.text("version", ui.Offset{X: 0, Y: -3}, ui.Bottom, config.Version, p.Info))
	s.AddText(d.text("info", ui.Offset{X: 0, Y: -2}, ui.Bottom, "Arrow keys to steer, Esc to pause", p.Text))
	return s
}

// BuildPaused builds the pause screen with RESUME, RESTART and END
func BuildPaused(d Deps) *Scene {
	s := d.menuScene(Paused,
		d.button("resume", ui.Offset{X: 0, Y: -5}, "RESUME", event.Resume),
		d.button("restart", ui.Offset{X: 0, Y: -3}, "RESTART", event.Restart),
		d.button("end", ui.Offset{X: 0, Y: -1}, "END", event.End),
	)
	s.AddText(d.text("title", ui.Offset{X: 0, Y: 5}, ui.Top, titlePaused, d.Config.Palette.Text))
	return s
}

// BuildGameOver builds the game over screen with RESTART and MENU and the final score
func BuildGameOver(d Deps) *Scene {
	p := d.Config.Palette
	s := d.menuScene(GameOver,
		d.button("restart", ui.Offset{X: 0, Y: -3}, "RESTART", event.Restart),
		d.button("menu", ui.Offset{X: 0, Y: -1}, "MENU", event.GoToMenu),
	)
	s.AddText(d.text("title", ui.Offset{X: 0, Y: 5}, ui.Top, titleGameOver, p.Alert))
	s.AddText(d.text(textFinalScore, ui.Offset{X: 0, Y: -8}, ui.Center, formatFinalScore(0), p.Text))
	return s
}

// BuildGameplay builds the playfield with the score line and FPS counter
func BuildGameplay(d Deps) *Scene {
	p := d.Config.Palette
	s := newScene(Gameplay, KindGameplay, d.Width, d.Height, entity.NewWall(d.Width, d.Height, p), d.Log)
	s.AddText(d.text(textScoreLabel, ui.Offset{X: 0, Y: 0}, ui.BottomLeft, "Score: ", p.Text))
	s.AddText(d.text(textScore, ui.Offset{X: 7, Y: 0}, ui.BottomLeft, formatScore(0), p.Text))
	s.AddText(d.text(textFPS, ui.Offset{X: -1, Y: 0}, ui.BottomRight, formatFPS(0), p.Info))

	rng := d.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s.play = &Play{
		cfg:    d.Config,
		rng:    rng,
		sounds: d.sounds(),
	}
	return s
}

// BuildAll builds the four scenes and returns a manager holding them, none current yet
func BuildAll(d Deps) *Manager {
	m := NewManager(d.Log)
	m.Add(BuildMainMenu(d))
	m.Add(BuildGameplay(d))
	m.Add(BuildPaused(d))
	m.Add(BuildGameOver(d))
	return m
}
