package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-rush/internal/games/paddlerush"
	"github.com/vovakirdan/paddle-rush/internal/platform/tui"
	"github.com/vovakirdan/paddle-rush/internal/registry"
)

var (
	flagWatch  bool
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without an argument the full run starts: asteroids
first, then the boss once the score threshold is reached.

Controls:
  A/D, Left/Right - Rotate
  W/Up            - Thrust
  Space           - Fire (start on the title screen)
  Enter           - Confirm
  Esc/B           - Back
  P               - Pause
  C               - Toggle collision boxes
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Gentle progression, weaker boss
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, tougher boss
  fixed  - No progression

Examples:
  paddlerush play
  paddlerush play paddlerush_boss
  paddlerush play --difficulty hard --seed 42
  paddlerush play --config ./tuning.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Master volume (0-1)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := paddlerush.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'paddlerush list' to see available games.")
		os.Exit(1)
	}

	if err := playGame(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one game with every local service attached.
func playGame(gameID string) error {
	logger, closeLog, err := newLogger(io.Discard, "paddlerush")
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, err := loadTuning("")
	if err != nil {
		return fmt.Errorf("tuning: %w", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	sink, closeAudio := newSink(flagMute, flagVolume, cfg.Seed, logger)
	defer closeAudio()

	opts := tui.Options{
		Store:   store,
		Logger:  logger,
		Setup:   gameSetup(tuning, store, logger, sink),
		Palette: localPalette(),
	}
	if flagWatch {
		if w := tuningWatcher(logger); w != nil {
			defer w.Close()
			opts.Watcher = w
			opts.Reload = loadTuning
		}
	}

	logger.Info("game started", "game", gameID, "seed", cfg.Seed, "difficulty", flagDifficulty)
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
