package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Long:  `Shows the named board presets usable with --preset.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := config.Presets()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Println("Available presets:")
	fmt.Println()

	fmt.Printf("  %-*s  %4s  %6s  %5s  %s\n", maxNameLen, "Name", "Size", "Length", "Tick", "Description")
	fmt.Printf("  %-*s  %4s  %6s  %5s  %s\n", maxNameLen, "----", "----", "------", "----", "-----------")

	for _, p := range presets {
		timing := config.TimingConfig{Difficulty: p.Difficulty, UnitMS: config.DefaultSnakeConfig().Timing.UnitMS}
		fmt.Printf("  %-*s  %4d  %6d  %5s  %s\n",
			maxNameLen, p.Name, p.Board.Size, p.Board.InitialLength, timing.TickInterval(), p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --preset <name>' to use one.")
}
