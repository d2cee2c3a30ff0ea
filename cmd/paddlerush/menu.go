package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-rush/internal/platform/tui"
	"github.com/vovakirdan/paddle-rush/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
scoreboard. After a game ends, you return to the menu to play again.

Examples:
  paddlerush menu
  paddlerush menu --fps 30
  paddlerush menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Master volume (0-1)")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := menuLoop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func menuLoop() error {
	logger, closeLog, err := newLogger(io.Discard, "paddlerush")
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := loadTuning("")
	if err != nil {
		return fmt.Errorf("tuning: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	sink, closeAudio := newSink(flagMute, flagVolume, cfg.Seed, logger)
	defer closeAudio()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}
		// Setup re-reads the high score, so a new best carries over.
		opts := tui.Options{
			Store:   store,
			Logger:  logger,
			Setup:   gameSetup(tuning, store, logger, sink),
			Palette: localPalette(),
		}
		if err := tui.Run(game, cfg, opts); err != nil {
			return err
		}
		sink.StopAllMusic()
	}
}
