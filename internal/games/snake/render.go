package snake

import (
	"errors"
	"fmt"

	platformcore "github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake/core"
)

// cellStyle is how one board cell is drawn: two runes and a colour.
type cellStyle struct {
	left, right rune
	color       platformcore.Color
}

var cellStyles = map[core.CellKind]cellStyle{
	core.CellEmpty:  {' ', '·', platformcore.ColorGray},
	core.CellHead:   {'█', '█', platformcore.ColorBrightGreen},
	core.CellBody:   {'▓', '▓', platformcore.ColorGreen},
	core.CellReward: {'◖', '◗', platformcore.ColorBrightRed},
}

// boardRect returns the screen rectangle of the framed board.
func (g *Game) boardRect() platformcore.Rect {
	size := g.state.Size()
	w := size*cellWidth + 2
	h := size + 2
	area := platformcore.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)
	return area.Centered(w, h)
}

// tooSmall reports whether the framed board does not fit on screen.
func (g *Game) tooSmall() bool {
	size := g.state.Size()
	return g.screenW < size*cellWidth+2 || g.screenH < size+2+hudHeight
}

// Render draws the game to the screen. The board is projected fresh on every
// call.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall() {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch g.state.Phase() {
	case core.PhaseIdle:
		g.renderOverlay(dst, "Snake", "Press space to start")
	case core.PhaseGameOver:
		title := "Game Over"
		if errors.Is(g.endErr, core.ErrBoardFull) {
			title = "Board full"
		}
		g.renderOverlay(dst, title, fmt.Sprintf("Score: %d - press R to restart", g.state.Score()))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d  Direction: %s",
		g.state.Score(), g.state.Len(), g.state.Direction())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame and the projected grid.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	frame := g.boardRect()
	dst.DrawBox(frame, platformcore.ColorGray)

	grid := core.Project(g.state)
	for row, cells := range grid {
		for col, kind := range cells {
			style := cellStyles[kind]
			x := frame.X + 1 + col*cellWidth
			y := frame.Y + 1 + row
			dst.SetColored(x, y, style.left, style.color)
			dst.SetColored(x+1, y, style.right, style.color)
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := platformcore.Max(len([]rune(line1)), len([]rune(line2)))
	screen := platformcore.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
