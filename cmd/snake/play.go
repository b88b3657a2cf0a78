package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal. The board is shown first;
the snake starts moving once you press space.

Controls:
  w/a/s/d      - Up/Left/Down/Right
  Space/Enter  - Start
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --preset tiny
  snake play --difficulty 2 --seed 42
  snake play --log ./snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug log to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "snake",
	})

	if err := tui.Run(snake.New(logger), runtimeConfig(cfg, width, height), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
