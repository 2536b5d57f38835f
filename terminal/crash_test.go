package terminal

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// captureCrashes routes terminal goroutine panics into a channel for one test
func captureCrashes(t *testing.T) (*bytes.Buffer, chan any) {
	t.Helper()
	var reset bytes.Buffer
	crashes := make(chan any, 1)

	prev := crashResetOut
	crashResetOut = &reset
	SetCrashHandler(func(r any) { crashes <- r })
	t.Cleanup(func() {
		crashResetOut = prev
		SetCrashHandler(nil)
	})
	return &reset, crashes
}

func waitCrash(t *testing.T, crashes chan any) any {
	t.Helper()
	select {
	case r := <-crashes:
		return r
	case <-time.After(time.Second):
		t.Fatal("Expected the panic to reach the crash handler")
	}
	return nil
}

type panickingBackend struct {
	*fakeBackend
}

func (p panickingBackend) Read(<-chan struct{}) ([]byte, error) {
	panic("read exploded")
}

func TestReadLoopPanicResetsTerminal(t *testing.T) {
	reset, crashes := captureCrashes(t)

	r := newInputReader(panickingBackend{newFakeBackend(80, 45)})
	r.start()

	got := fmt.Sprint(waitCrash(t, crashes))
	if !strings.Contains(got, "input reader") || !strings.Contains(got, "read exploded") {
		t.Errorf("Expected source and panic value, got %q", got)
	}
	if !strings.Contains(reset.String(), string(csiAltScreenExit)) {
		t.Errorf("Expected alternate screen exit in reset output, got %q", reset.String())
	}
	r.stop()
}

func TestScreenPollPanicResetsTerminal(t *testing.T) {
	reset, crashes := captureCrashes(t)

	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreen(sim)
	s.translate = func(*tcell.EventKey) (Event, bool) { panic("bad key") }
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer s.Fini()

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)

	got := fmt.Sprint(waitCrash(t, crashes))
	if !strings.Contains(got, "tcell poll") || !strings.Contains(got, "bad key") {
		t.Errorf("Expected source and panic value, got %q", got)
	}
	if !strings.Contains(reset.String(), string(csiCursorShow)) {
		t.Errorf("Expected cursor restore in reset output, got %q", reset.String())
	}
}
