package scene

import (
	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/ui"
)

// Menu is the payload of selector-driven scenes
type Menu struct {
	selector *ui.Selector
	sounds   audio.Player
}

// Selector exposes the button list
func (m *Menu) Selector() *ui.Selector {
	return m.selector
}

func (m *Menu) update(s *Scene, f Frame) event.Type {
	if !f.Pressed {
		return event.None
	}

	before := m.selector.Selected()
	ev := m.selector.Update(f.Key, s.matrix)
	if ev != event.None || m.selector.Selected() != before {
		m.sounds.Play(audio.SoundSelect)
	}
	return ev
}
