package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/games/snake/core"
)

var flagTicks int

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the board after a number of ticks",
	Long: `Builds a game from the effective config, starts it, advances it
--ticks times without steering, and prints the board as text:

  .  empty    H  head    B  body    R  reward

Examples:
  snake render
  snake render --ticks 3 --seed 42
  snake render --preset tiny --ticks 2`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to advance")
}

func runRender(_ *cobra.Command, _ []string) {
	cfg, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	state, err := core.Initialize(cfg.Board.Size, cfg.Board.InitialLength, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	state = core.Start(state)

	for i, n := 0, flagTicks; i < n; i++ {
		state, err = core.Advance(state, rng)
		if err != nil {
			break
		}
	}

	fmt.Println(core.Project(state).String())
	fmt.Printf("tick=%d score=%d length=%d direction=%s phase=%s seed=%d\n",
		state.Tick(), state.Score(), state.Len(), state.Direction(), state.Phase(), seed)

	var collision *core.CollisionError
	switch {
	case errors.As(err, &collision):
		fmt.Printf("game over: %v\n", collision)
	case errors.Is(err, core.ErrBoardFull):
		fmt.Println("game over: board full")
	}
}
