// Package core provides the game-state machine for Snake.
// This package is UI-agnostic and deterministic: every operation takes a
// State value and returns a new one, randomness comes from a caller-supplied
// source.
package core

import "fmt"

// Direction represents the snake's movement direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
// Up decreases Row, Down increases Row.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d <= DirRight
}

// ParseDirection converts a direction name ("up", "down", "left", "right")
// back into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("core: unknown direction %q", s)
}

// IsOpposite reports whether a and b form the Up/Down or Left/Right pair.
func IsOpposite(a, b Direction) bool {
	return (a == DirUp && b == DirDown) ||
		(a == DirDown && b == DirUp) ||
		(a == DirLeft && b == DirRight) ||
		(a == DirRight && b == DirLeft)
}

// CellKind is what a single board cell shows after projection.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellHead
	CellBody
	CellReward
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellHead:
		return "head"
	case CellBody:
		return "body"
	case CellReward:
		return "reward"
	default:
		return "unknown"
	}
}

// Glyph returns the single-character text form used by Grid.String.
func (k CellKind) Glyph() byte {
	switch k {
	case CellHead:
		return 'H'
	case CellBody:
		return 'B'
	case CellReward:
		return 'R'
	default:
		return '.'
	}
}

// Phase is the lifecycle stage of a game.
type Phase uint8

const (
	PhaseIdle Phase = iota // built, waiting for the start gate
	PhaseRunning
	PhaseGameOver // terminal until the caller builds a fresh State
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
