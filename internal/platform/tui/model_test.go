package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := core.RuntimeConfig{
		ScreenW:      60,
		ScreenH:      20,
		BoardSize:    10,
		SnakeLength:  5,
		TickInterval: 10 * time.Millisecond,
		Seed:         7,
	}
	m, err := NewModel(snake.New(nil), cfg, nil)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestNoTicksBeforeStart(t *testing.T) {
	m := newTestModel(t)
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should not schedule a tick before start")
	}

	m, cmd := update(t, m, runeKey('s'))
	if cmd != nil {
		t.Error("direction key before start should not schedule a tick")
	}
	if m.game.Board().Running() {
		t.Error("game should still be idle")
	}
}

func TestStartSchedulesTickChain(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, space())
	if cmd == nil {
		t.Fatal("start should schedule the first tick")
	}
	if m.tickGen != 1 {
		t.Errorf("tickGen = %d, expected 1", m.tickGen)
	}

	// A second start press must not open another chain
	m, cmd = update(t, m, space())
	if cmd != nil {
		t.Error("second start should not schedule another tick")
	}
	if m.tickGen != 1 {
		t.Errorf("tickGen = %d, expected 1", m.tickGen)
	}
}

func TestTickAdvancesAndReschedules(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, space())

	m, cmd := update(t, m, TickMsg{Gen: m.tickGen})
	if cmd == nil {
		t.Error("tick while running should schedule the next tick")
	}
	if got := m.game.Board().Tick(); got != 1 {
		t.Errorf("Tick() = %d, expected 1", got)
	}
}

func TestStaleTickDropped(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, space())

	m, cmd := update(t, m, TickMsg{Gen: m.tickGen - 1})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if got := m.game.Board().Tick(); got != 0 {
		t.Errorf("Tick() = %d, expected 0 after stale tick", got)
	}
}

func TestTicksStopAtGameOverAndRestart(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, space())

	// Heading right from column 4 on a 10-wide board hits the wall by tick 6
	var cmd tea.Cmd
	for i := 0; i < 10; i++ {
		m, cmd = update(t, m, TickMsg{Gen: m.tickGen})
		if m.game.State().GameOver {
			break
		}
	}
	if !m.game.State().GameOver {
		t.Fatal("expected game over")
	}
	if cmd != nil {
		t.Error("no tick should be scheduled after game over")
	}

	gen := m.tickGen
	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should schedule a new tick chain")
	}
	if m.tickGen != gen+1 {
		t.Errorf("tickGen = %d, expected %d", m.tickGen, gen+1)
	}
	if !m.game.Board().Running() {
		t.Error("game should be running after restart")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("View() should be empty when quitting")
	}
}

func TestViewShowsHelpAndBoard(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Press space to start") {
		t.Error("idle view should show the start prompt")
	}
	if !strings.Contains(view, "restart") {
		t.Error("view should include key help")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, space())
	m, _ = update(t, m, TickMsg{Gen: m.tickGen})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
	if got := m.game.Board().Tick(); got != 1 {
		t.Errorf("Tick() = %d, expected resize to keep the game", got)
	}
}
