// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, key decoding, and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain that produced it; ticks from an abandoned
// chain are dropped so two chains never run at once.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
// The next tick is only scheduled once this one has been processed.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
