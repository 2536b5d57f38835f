package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/audio"
	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/scene"
	"github.com/lixenwraith/term-snake/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	core.InstallCrashHandler()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	// Size is checked before anything touches the terminal mode
	width, height, err := terminal.QuerySize()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	if err := terminal.CheckSize(width, height, cfg.MinWidth, cfg.MinHeight); err != nil {
		return err
	}

	term, err := newTerminal(cfg)
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashTerminal(term)
	defer core.SetCrashTerminal(nil)
	// Normal exit terminal cleanup
	defer term.Fini()

	logger.Info().
		Str("backend", cfg.Backend).
		Int("width", width).
		Int("height", height).
		Int("fps", cfg.FPS).
		Msg("terminal ready")

	sounds, stopAudio := audio.NewPlayer(cfg.Audio, logger)
	defer stopAudio()

	manager := scene.BuildAll(scene.Deps{
		Width:  width,
		Height: height,
		Config: cfg,
		Sounds: sounds,
		Rand:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		Log:    logger,
	})
	manager.SetCurrent(scene.MainMenu)

	term.HideCursor()
	defer restoreScreen(term, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := engine.NewChronometer(cfg.FPS, engine.NewMonotonicTimeProvider())
	return engine.NewLoop(term, manager, clock, logger).Run(ctx)
}

func newTerminal(cfg *config.Config) (terminal.Terminal, error) {
	if cfg.Backend == config.BackendTcell {
		s, err := terminal.NewTcell()
		if err != nil {
			return nil, fmt.Errorf("create tcell screen: %w", err)
		}
		return s, nil
	}
	return terminal.New(cfg.TerminalColorMode()), nil
}

func restoreScreen(term terminal.Terminal, logger zerolog.Logger) {
	term.ShowCursor()
	term.Clear()
	if err := term.Flush(); err != nil {
		logger.Warn().Err(err).Msg("final flush")
	}
}
