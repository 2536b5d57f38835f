// Package config builds the immutable game configuration from defaults, an
// optional TOML file and SNAKE_* environment variables.
package config

import (
	"errors"
)

// Version is shown on the main menu
const Version = "v0.3.1"

// ErrInvalid wraps every configuration validation failure
var ErrInvalid = errors.New("invalid configuration")

// Backend names accepted by SNAKE_BACKEND
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Color mode names accepted by SNAKE_COLOR
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config holds every tunable the game reads at startup
type Config struct {
	FPS           int     `toml:"fps" validate:"min=1,max=1000"`
	SnakeSpeed    float64 `toml:"snake_speed" validate:"gt=0,lte=1000"`
	InitialLength int     `toml:"initial_length" validate:"min=1,max=16"`
	MinWidth      int     `toml:"min_width" validate:"min=20"`
	MinHeight     int     `toml:"min_height" validate:"min=10"`
	Debug         bool    `toml:"debug"`
	Backend       string  `toml:"backend" validate:"oneof=ansi tcell"`
	ColorMode     string  `toml:"color_mode" validate:"oneof=auto truecolor 256"`

	Audio AudioConfig `toml:"audio"`
	Theme Theme       `toml:"theme"`

	// Palette is Theme resolved to terminal colors by Load
	Palette Palette `toml:"-" validate:"-"`
}

// AudioConfig controls the sound effects
type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume" validate:"gte=0,lte=1"`
	SampleRate   int     `toml:"sample_rate" validate:"oneof=22050 44100 48000"`

	// EffectVolumes scales individual effects, keyed by sound name
	EffectVolumes map[string]float64 `toml:"effect_volumes" validate:"dive,keys,oneof=fruit crash select,endkeys,gte=0,lte=1"`
}

// Theme lists the game colors as hex strings
type Theme struct {
	Wall       string `toml:"wall" validate:"hexcolor"`
	SnakeHead  string `toml:"snake_head" validate:"hexcolor"`
	SnakeTail  string `toml:"snake_tail" validate:"hexcolor"`
	Fruit      string `toml:"fruit" validate:"hexcolor"`
	Text       string `toml:"text" validate:"hexcolor"`
	Background string `toml:"background" validate:"hexcolor"`
	SelectedFg string `toml:"selected_fg" validate:"hexcolor"`
	SelectedBg string `toml:"selected_bg" validate:"hexcolor"`
	Accent     string `toml:"accent" validate:"hexcolor"`
	Alert      string `toml:"alert" validate:"hexcolor"`
	Info       string `toml:"info" validate:"hexcolor"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FPS:           75,
		SnakeSpeed:    25.0,
		InitialLength: 4,
		MinWidth:      80,
		MinHeight:     45,
		Debug:         false,
		Backend:       BackendANSI,
		ColorMode:     ColorAuto,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
			EffectVolumes: map[string]float64{
				"fruit":  1.0,
				"crash":  0.8,
				"select": 0.4,
			},
		},
		Theme: Theme{
			Wall:       "#ffffff",
			SnakeHead:  "#00ff00",
			SnakeTail:  "#00ff00",
			Fruit:      "#ff0000",
			Text:       "#ffffff",
			Background: "#000000",
			SelectedFg: "#000000",
			SelectedBg: "#80ff80",
			Accent:     "#80ff80",
			Alert:      "#ff8080",
			Info:       "#80ffff",
		},
	}
}
