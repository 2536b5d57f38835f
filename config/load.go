package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/term-snake/terminal"
)

// Environment variable names
const (
	EnvConfigFile   = "SNAKE_CONFIG"
	EnvFPS          = "SNAKE_FPS"
	EnvSpeed        = "SNAKE_SPEED"
	EnvDebug        = "SNAKE_DEBUG"
	EnvAudioEnabled = "SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "SNAKE_MASTER_VOLUME"
	EnvBackend      = "SNAKE_BACKEND"
	EnvColor        = "SNAKE_COLOR"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateSnakeFits, Config{})
	return v
}

// validateSnakeFits rejects an initial snake that would hang through the bottom wall
func validateSnakeFits(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	if c.InitialLength > MaxInitialLength(c.MinHeight) {
		sl.ReportError(c.InitialLength, "InitialLength", "initial_length", "fits_min_height", strconv.Itoa(c.MinHeight))
	}
}

// MaxInitialLength is the longest snake that spawns on the center row of a height-row playfield
// with its body above the bottom wall
func MaxInitialLength(height int) int {
	return height - height/2 - 1
}

// Load builds the configuration from defaults, the SNAKE_CONFIG file and the environment
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with an injectable environment lookup
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path := getenv(EnvConfigFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decodeTOML(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
	}

	if err := applyEnv(getenv, &cfg); err != nil {
		return nil, err
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	p, err := cfg.Theme.Resolve()
	if err != nil {
		return nil, err
	}
	cfg.Palette = p

	return &cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// applyEnv overlays SNAKE_* variables, rejecting malformed values
func applyEnv(getenv func(string) string, cfg *Config) error {
	if v := getenv(EnvFPS); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvFPS, v)
		}
		cfg.FPS = n
	}

	if v := getenv(EnvSpeed); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSpeed, v)
		}
		cfg.SnakeSpeed = f
	}

	if v := getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvDebug, v)
		}
		cfg.Debug = b
	}

	if v := getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvAudioEnabled, v)
		}
		cfg.Audio.Enabled = b
	}

	// Master volume is 0-100, clamped
	if v := getenv(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvMasterVolume, v)
		}
		cfg.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}

	if v := getenv(EnvBackend); v != "" {
		cfg.Backend = strings.ToLower(v)
	}

	if v := getenv(EnvColor); v != "" {
		cfg.ColorMode = strings.ToLower(v)
	}

	return nil
}

// TerminalColorMode maps the configured color mode to the terminal setting
// auto defers to environment detection
func (c *Config) TerminalColorMode() terminal.ColorMode {
	switch c.ColorMode {
	case ColorTrueColor:
		return terminal.ColorModeTrueColor
	case Color256:
		return terminal.ColorMode256
	}
	return terminal.DetectColorMode()
}
