package core

import "fmt"

// Coordinate is a board cell. Row grows downward, Col grows to the right.
type Coordinate struct {
	Row int
	Col int
}

// C is a convenience constructor for Coordinate.
func C(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether c lies on a size×size board.
func (c Coordinate) InBounds(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// Move returns c shifted by one cell in direction d.
// No bounds checking is done; callers validate with InBounds.
func Move(c Coordinate, d Direction) Coordinate {
	dRow, dCol := d.Delta()
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// contains reports whether cells holds c.
func contains(cells []Coordinate, c Coordinate) bool {
	for _, cell := range cells {
		if cell == c {
			return true
		}
	}
	return false
}
