package scene

import (
	"testing"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/event"
	"github.com/lixenwraith/term-snake/terminal"
)

func TestMainMenuSelection(t *testing.T) {
	d, sounds := testDeps(t)
	s := BuildMainMenu(d)
	s.Render()

	if ev, _ := s.Update(Frame{}, Context{}); ev != event.None {
		t.Errorf("Expected None without a key, got %s", ev)
	}
	if ev, _ := s.Update(press(terminal.KeyEnter), Context{}); ev != event.Start {
		t.Errorf("Expected Start, got %s", ev)
	}

	s.Update(press(terminal.KeyDown), Context{})
	s.Update(press(terminal.KeyDown), Context{})
	if got := s.Menu().Selector().Selected(); got != 1 {
		t.Errorf("Expected selection clamped at 1, got %d", got)
	}
	if ev, _ := s.Update(press(terminal.KeyEnter), Context{}); ev != event.Exit {
		t.Errorf("Expected Exit, got %s", ev)
	}

	// Enter, Down, Enter; the clamped Down is silent
	if got := sounds.count(audio.SoundSelect); got != 3 {
		t.Errorf("Expected 3 select sounds, got %d", got)
	}
}

func TestMenuButtons(t *testing.T) {
	d, _ := testDeps(t)
	tests := []struct {
		build func(Deps) *Scene
		want  []event.Type
	}{
		{BuildMainMenu, []event.Type{event.Start, event.Exit}},
		{BuildPaused, []event.Type{event.Resume, event.Restart, event.End}},
		{BuildGameOver, []event.Type{event.Restart, event.GoToMenu}},
	}

	for _, tt := range tests {
		s := tt.build(d)
		t.Run(s.Name(), func(t *testing.T) {
			if s.Kind() != KindMenu || s.Play() != nil {
				t.Fatal("Expected a menu scene")
			}
			buttons := s.Menu().Selector().Buttons()
			if len(buttons) != len(tt.want) {
				t.Fatalf("Expected %d buttons, got %d", len(tt.want), len(buttons))
			}
			for i, b := range buttons {
				if b.Event() != tt.want[i] {
					t.Errorf("Button %d: expected %s, got %s", i, tt.want[i], b.Event())
				}
			}
			if !buttons[0].Selected() {
				t.Error("Expected first button selected")
			}
		})
	}
}

func TestMenuIgnoresGameplayContext(t *testing.T) {
	d, _ := testDeps(t)
	s := BuildPaused(d)
	in := Context{Score: 3}

	_, out := s.Update(press(terminal.KeyUp), in)
	if out != in {
		t.Errorf("Expected context unchanged, got %+v", out)
	}
}
