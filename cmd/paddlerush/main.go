// paddlerush is a terminal arcade game: survive an asteroid field, then
// beat a two-paddle boss that turns from a Pong duel into a brick wall.
//
// Usage:
//
//	paddlerush play [game]     - Play (default: paddlerush)
//	paddlerush menu            - Pick a mode interactively
//	paddlerush list            - List available modes
//	paddlerush scores [game]   - Show high scores and boss attempts
//	paddlerush serve           - Start SSH server for remote play
//	paddlerush config init     - Write the default tuning file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Tuning YAML (default: search path, then embedded)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--no-color            - Draw without colours
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/paddle-rush/internal/games/paddlerush"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagNoColor    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddlerush",
	Short: "Paddle Rush - an asteroid run with a paddle boss at the end",
	Long: `Paddle Rush is a terminal arcade game. Fly a ship through an asteroid
field until the score summons the boss: two paddles that play Pong with
you, split apart, and finally hide behind a wall of bricks.

Available commands:
  play     - Play directly
  menu     - Interactive mode picker
  list     - Show available modes
  scores   - View high scores and boss attempts
  serve    - Start SSH server for remote play
  config   - Write or locate the tuning file

Examples:
  paddlerush play
  paddlerush play paddlerush_boss --difficulty hard
  paddlerush play --config ./tuning.yaml --watch
  paddlerush serve --ssh :2222
  paddlerush scores --attempts`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Draw the game without colours")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
