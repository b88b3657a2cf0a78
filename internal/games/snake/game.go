// Package snake wires the snake state machine into the platform: it owns the
// current game state, turns platform actions into core requests, and draws
// the board into a screen buffer.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake/core"
)

// Layout constants for the terminal board.
const (
	hudHeight = 2 // HUD line + separator
	cellWidth = 2 // terminal columns per board cell, keeps cells roughly square
)

// Game implements the Snake game on top of the core state machine.
// It holds the only mutable reference to the current state; every tick
// replaces it with the value returned by core.Advance.
type Game struct {
	rng    *rand.Rand
	state  core.State
	cfg    platformcore.RuntimeConfig
	logger *log.Logger

	// Why the game ended; nil while playing
	endErr error

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a new Snake game. A nil logger discards log output.
func New(logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset builds a fresh Idle game from cfg.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	state, err := core.Initialize(cfg.BoardSize, cfg.SnakeLength, rng)
	if err != nil {
		return fmt.Errorf("snake: cannot start game: %w", err)
	}

	g.rng = rng
	g.state = state
	g.cfg = cfg
	g.endErr = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.logger.Debug("game reset",
		"size", cfg.BoardSize,
		"length", cfg.SnakeLength,
		"interval", cfg.TickInterval,
		"seed", cfg.Seed,
	)
	return nil
}

// Resize records new screen dimensions. The board itself is unaffected.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Handle applies a player action immediately. Direction actions go through
// the core debounce, so only the first admitted change between two ticks
// takes effect.
func (g *Game) Handle(action platformcore.Action) {
	switch action {
	case platformcore.ActionStart:
		if g.state.Phase() == core.PhaseIdle {
			g.state = core.Start(g.state)
			g.logger.Info("game started", "size", g.state.Size(), "length", g.state.Len())
		}
	case platformcore.ActionRestart:
		if g.state.Phase() == core.PhaseGameOver {
			g.restart()
		}
	default:
		if dir, ok := directionFor(action); ok {
			g.state = core.RequestDirection(g.state, dir)
		}
	}
}

// restart begins a new running game with a seed drawn from the old one.
func (g *Game) restart() {
	cfg := g.cfg
	cfg.Seed = g.rng.Int63()
	cfg.ScreenW, cfg.ScreenH = g.screenW, g.screenH
	if err := g.Reset(cfg); err != nil {
		// Same board settings that already worked once
		g.logger.Error("restart failed", "error", err)
		return
	}
	g.state = core.Start(g.state)
	g.logger.Info("game restarted", "seed", cfg.Seed)
}

// directionFor maps a movement action to a core direction.
func directionFor(action platformcore.Action) (core.Direction, bool) {
	switch action {
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionDown:
		return core.DirDown, true
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}

// Step advances the game by one tick. Outside the running phase it does
// nothing, so ticks stop as soon as the game is over.
func (g *Game) Step() platformcore.GameState {
	if !g.state.Running() {
		return g.State()
	}

	next, err := core.Advance(g.state, g.rng)
	g.state = next
	if err != nil {
		g.endErr = err
		if errors.Is(err, core.ErrBoardFull) {
			g.logger.Error("no free cell left for a reward, halting", "score", next.Score(), "length", next.Len())
		} else {
			g.logger.Info("game over", "cause", err, "score", next.Score(), "ticks", next.Tick())
		}
	}

	return g.State()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.state.Score(),
		Started:  g.state.Phase() != core.PhaseIdle,
		GameOver: g.state.Phase() == core.PhaseGameOver,
	}
}

// Board returns the current core state.
func (g *Game) Board() core.State {
	return g.state
}

// Err returns what ended the game: a *core.CollisionError, core.ErrBoardFull,
// or nil while the game is still going.
func (g *Game) Err() error {
	return g.endErr
}

// TickInterval returns the configured time between ticks.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.TickInterval
}
