package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-rush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tuning file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default tuning file",
	Long: `Write the built-in tuning to a YAML file you can edit. Without a
path the file goes to the first search location.

Examples:
  paddlerush config init
  paddlerush config init ./tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		paths := config.SearchPaths()
		path := paths[0]
		if len(args) > 0 {
			path = args[0]
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which tuning file would be used",
	Run: func(_ *cobra.Command, _ []string) {
		if p := config.ResolvePath(flagConfig); p != "" {
			fmt.Println(p)
			return
		}
		fmt.Println("(built-in defaults)")
		fmt.Println()
		fmt.Println("Searched:")
		for _, p := range config.SearchPaths() {
			fmt.Printf("  %s\n", p)
		}
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the tuning file in use",
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := loadTuning(""); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configPathCmd, configCheckCmd)
}
