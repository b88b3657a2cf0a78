package core

import "strings"

// Grid is a size×size projection of a State, indexed [row][col].
type Grid [][]CellKind

// Project maps s onto a freshly allocated grid. The reward is drawn first and
// the snake over it, so every cell carries exactly one kind.
func Project(s State) Grid {
	g := make(Grid, s.size)
	for row := range g {
		g[row] = make([]CellKind, s.size)
	}

	if s.reward.InBounds(s.size) {
		g[s.reward.Row][s.reward.Col] = CellReward
	}
	for i, seg := range s.snake {
		if !seg.InBounds(s.size) {
			continue
		}
		if i == 0 {
			g[seg.Row][seg.Col] = CellHead
			continue
		}
		g[seg.Row][seg.Col] = CellBody
	}
	return g
}

// At returns the kind at c, or CellEmpty off the grid.
func (g Grid) At(c Coordinate) CellKind {
	if c.Row < 0 || c.Row >= len(g) || c.Col < 0 || c.Col >= len(g[c.Row]) {
		return CellEmpty
	}
	return g[c.Row][c.Col]
}

// Count returns how many cells hold kind k.
func (g Grid) Count(k CellKind) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == k {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line using CellKind.Glyph.
func (g Grid) String() string {
	var sb strings.Builder
	for row, cells := range g {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range cells {
			sb.WriteByte(cell.Glyph())
		}
	}
	return sb.String()
}
