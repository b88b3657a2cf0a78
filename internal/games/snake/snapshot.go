package snake

import (
	"errors"

	"github.com/vovakirdan/gridsnake/internal/games/snake/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle      GameStateType = "idle"
	StatePlaying   GameStateType = "playing"
	StateGameOver  GameStateType = "game_over"
	StateBoardFull GameStateType = "board_full"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Coordinate
	Dir      core.Direction
	Reward   core.Coordinate
	Pending  int // unsettled growth markers
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch g.state.Phase() {
	case core.PhaseIdle:
		state = StateIdle
	case core.PhaseGameOver:
		state = StateGameOver
		if errors.Is(g.endErr, core.ErrBoardFull) {
			state = StateBoardFull
		}
	}

	var head core.Coordinate
	if g.state.Len() > 0 {
		head = g.state.Head()
	}

	return Snapshot{
		Tick:     g.state.Tick(),
		Score:    g.state.Score(),
		SnakeLen: g.state.Len(),
		Head:     head,
		Dir:      g.state.Direction(),
		Reward:   g.state.Reward(),
		Pending:  g.state.Growth().Len(),
		State:    state,
	}
}
