// snake is a terminal Snake game.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake serve              - Start SSH server for remote play
//	snake presets            - List board presets
//	snake render             - Print the board after a number of ticks
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom YAML config file
//	--preset <name>     - Board preset (classic, tiny, large, blitz)
//	--size <n>          - Board size in cells
//	--length <n>        - Initial snake length
//	--difficulty <n>    - Tick interval multiplier (n * 100ms)
//	--seed <value>      - RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagPreset     string
	flagSize       int
	flagLength     int
	flagDifficulty int
	flagSeed       int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - play the classic snake game in your terminal",
	Long: `Snake on a square board. Steer with w/a/s/d, eat rewards to grow,
and avoid the walls and your own body.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  presets  - List board presets
  render   - Print the board after N ticks (debugging)
  config   - Print the effective configuration

Examples:
  snake play
  snake play --preset blitz
  snake play --size 15 --difficulty 2
  snake serve --ssh :2222
  snake render --ticks 3 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Board preset: classic, tiny, large, blitz")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size in cells (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagLength, "length", 0, "Initial snake length (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagDifficulty, "difficulty", 0, "Tick interval multiplier, n * 100ms (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}
