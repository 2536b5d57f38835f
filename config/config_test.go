package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/term-snake/terminal"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(nil))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FPS != 75 {
		t.Errorf("Expected FPS 75, got %d", cfg.FPS)
	}
	if cfg.SnakeSpeed != 25.0 {
		t.Errorf("Expected speed 25, got %f", cfg.SnakeSpeed)
	}
	if cfg.MinWidth != 80 || cfg.MinHeight != 45 {
		t.Errorf("Expected minimum 80x45, got %dx%d", cfg.MinWidth, cfg.MinHeight)
	}
	if cfg.Backend != BackendANSI {
		t.Errorf("Expected ansi backend, got %s", cfg.Backend)
	}
	if cfg.Palette.Fruit != terminal.RGBRed {
		t.Errorf("Expected red fruit, got %v", cfg.Palette.Fruit)
	}
	if cfg.Palette.Wall != terminal.RGBWhite {
		t.Errorf("Expected white wall, got %v", cfg.Palette.Wall)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		EnvFPS:          "60",
		EnvSpeed:        "12.5",
		EnvDebug:        "true",
		EnvAudioEnabled: "false",
		EnvMasterVolume: "150",
		EnvBackend:      "TCELL",
		EnvColor:        "256",
	}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.FPS != 60 {
		t.Errorf("Expected FPS 60, got %d", cfg.FPS)
	}
	if cfg.SnakeSpeed != 12.5 {
		t.Errorf("Expected speed 12.5, got %f", cfg.SnakeSpeed)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.MasterVolume != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Backend != BackendTcell {
		t.Errorf("Expected tcell backend, got %s", cfg.Backend)
	}
	if cfg.TerminalColorMode() != terminal.ColorMode256 {
		t.Error("Expected 256-color mode")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"malformed fps", map[string]string{EnvFPS: "fast"}},
		{"zero fps", map[string]string{EnvFPS: "0"}},
		{"negative speed", map[string]string{EnvSpeed: "-1"}},
		{"unknown backend", map[string]string{EnvBackend: "curses"}},
		{"unknown color", map[string]string{EnvColor: "16"}},
		{"malformed debug", map[string]string{EnvDebug: "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(envMap(tt.env))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.toml")
	data := `
fps = 30
initial_length = 6

[audio]
master_volume = 0.25

[theme]
snake_head = "#00aa00"
fruit = "#ffaa00"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(envMap(map[string]string{EnvConfigFile: path, EnvFPS: "40"}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Environment wins over file
	if cfg.FPS != 40 {
		t.Errorf("Expected FPS 40, got %d", cfg.FPS)
	}
	if cfg.InitialLength != 6 {
		t.Errorf("Expected initial length 6, got %d", cfg.InitialLength)
	}
	if cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("Expected volume 0.25, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Palette.SnakeHead != (terminal.RGB{R: 0, G: 170, B: 0}) {
		t.Errorf("Expected green head, got %v", cfg.Palette.SnakeHead)
	}
	if cfg.Palette.Fruit != (terminal.RGB{R: 255, G: 170, B: 0}) {
		t.Errorf("Expected orange fruit, got %v", cfg.Palette.Fruit)
	}
	// Untouched theme keys keep defaults
	if cfg.Palette.Wall != terminal.RGBWhite {
		t.Errorf("Expected default wall, got %v", cfg.Palette.Wall)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFrom(envMap(map[string]string{EnvConfigFile: filepath.Join(dir, "missing.toml")}))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Expected read error, got %v", err)
	}

	path := filepath.Join(dir, "bad.toml")
	os.WriteFile(path, []byte("speedy = true\n"), 0o644)
	_, err = LoadFrom(envMap(map[string]string{EnvConfigFile: path}))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown key, got %v", err)
	}

	os.WriteFile(path, []byte("[theme]\nwall = \"white\"\n"), 0o644)
	_, err = LoadFrom(envMap(map[string]string{EnvConfigFile: path}))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for bad color, got %v", err)
	}
}

func TestSnakeShade(t *testing.T) {
	p := Palette{SnakeHead: terminal.RGBWhite, SnakeTail: terminal.RGBBlack}

	if got := p.SnakeShade(0, 5); got != terminal.RGBWhite {
		t.Errorf("Expected head color at 0, got %v", got)
	}
	if got := p.SnakeShade(4, 5); got != terminal.RGBBlack {
		t.Errorf("Expected tail color at end, got %v", got)
	}
	mid := p.SnakeShade(2, 5)
	if mid == terminal.RGBWhite || mid == terminal.RGBBlack {
		t.Errorf("Expected blended middle segment, got %v", mid)
	}

	flat := Palette{SnakeHead: terminal.RGBRed, SnakeTail: terminal.RGBRed}
	if got := flat.SnakeShade(3, 10); got != terminal.RGBRed {
		t.Errorf("Expected flat color, got %v", got)
	}
}

func TestLoadRejectsSnakeLongerThanPlayfield(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tooLong := write("long.toml", "min_height = 10\ninitial_length = 16\n")
	if _, err := LoadFrom(envMap(map[string]string{EnvConfigFile: tooLong})); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for a 16-segment snake on 10 rows, got %v", err)
	}

	fits := write("fits.toml", "min_height = 10\ninitial_length = 4\n")
	if _, err := LoadFrom(envMap(map[string]string{EnvConfigFile: fits})); err != nil {
		t.Errorf("Expected 4 segments to fit 10 rows, got %v", err)
	}
}

func TestMaxInitialLengthStaysAboveBottomWall(t *testing.T) {
	for h := 10; h <= 60; h++ {
		n := MaxInitialLength(h)
		if n < 1 {
			t.Fatalf("Height %d: expected room for a snake, got %d", h, n)
		}
		// Tail row of a snake whose head sits on the center row
		if tail := h/2 + n - 1; tail > h-2 {
			t.Errorf("Height %d: tail row %d reaches the bottom wall", h, tail)
		}
	}
}
