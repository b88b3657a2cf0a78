package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running a snake game.
// Key presses are applied to the game as they arrive; ticks are scheduled
// one at a time and only while the game is running.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	tickGen  int // generation of the live tick chain
	quitting bool
}

// NewModel creates a new Bubble Tea model and resets game from cfg.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config: cfg,
		keys:   NewKeyMapper(),
		help:   help.New(),
		logger: logger,
	}, nil
}

// Init waits for the start key; no ticks run before it.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	wasRunning := m.game.Board().Running()
	m.game.Handle(action)

	// Start or restart opens a new tick chain
	if !wasRunning && m.game.Board().Running() {
		m.tickGen++
		m.logger.Debug("tick chain started", "gen", m.tickGen, "interval", m.game.TickInterval())
		return m, tickCmd(m.game.TickInterval(), m.tickGen)
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.game.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen {
		return m, nil
	}

	state := m.game.Step()
	if state.GameOver {
		m.logger.Debug("tick chain stopped", "gen", m.tickGen, "score", state.Score)
		return m, nil
	}
	return m, tickCmd(m.game.TickInterval(), m.tickGen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
