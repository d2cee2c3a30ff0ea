package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/paddle-rush/internal/audio"
	"github.com/vovakirdan/paddle-rush/internal/config"
	"github.com/vovakirdan/paddle-rush/internal/core"
	"github.com/vovakirdan/paddle-rush/internal/games/paddlerush"
	"github.com/vovakirdan/paddle-rush/internal/platform/tui"
	"github.com/vovakirdan/paddle-rush/internal/registry"
	"github.com/vovakirdan/paddle-rush/internal/storage"
)

// newLogger builds the process logger. Without --log-file, logs go to
// fallback; a TUI passes io.Discard so nothing scribbles over the screen.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadTuning reads a tuning file and applies the --difficulty preset.
// An empty path walks the usual search order.
func loadTuning(path string) (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}

	var cfg config.GameConfig
	if path == "" {
		cfg, err = config.Load(flagConfig)
	} else {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// gameSetup returns the hook that hands services to every new game.
func gameSetup(cfg config.GameConfig, store *storage.Store, logger *log.Logger, sink audio.Sink) func(registry.Game) {
	return func(g registry.Game) {
		pg, ok := g.(*paddlerush.Game)
		if !ok {
			return
		}
		s := paddlerush.Settings{
			Config: cfg,
			Logger: logger.With("game", g.ID()),
			Audio:  sink,
		}
		if store != nil {
			high, err := store.HighScore(g.ID())
			if err != nil {
				logger.Warn("could not read high score", "game", g.ID(), "err", err)
			}
			s.HighScore = high
		}
		if err := pg.Configure(s); err != nil {
			logger.Error("invalid game settings", "game", g.ID(), "err", err)
		}
	}
}

// openStore opens the scores database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// terminalConfig sizes the simulation to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// localPalette picks the colours for the local terminal.
func localPalette() tui.Palette {
	if flagNoColor {
		return tui.MonoPalette()
	}
	return tui.NewPalette(nil)
}

// newSink starts the speaker unless muted. Any failure falls back to silence.
func newSink(mute bool, volume float64, seed int64, logger *log.Logger) (audio.Sink, func()) {
	if mute {
		return audio.Nop{}, func() {}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	synth := audio.NewSynth(seed, volume)
	if err := synth.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	return synth, synth.Close
}

// tuningWatcher watches the tuning file in use, if any.
func tuningWatcher(logger *log.Logger) *config.Watcher {
	path := config.ResolvePath(flagConfig)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch needs a tuning file; run 'paddlerush config init' to create one")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", path, err)
		return nil
	}
	logger.Info("watching tuning file", "path", path)
	return w
}
