package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by errors from Initialize and FromLayout.
var ErrInvalidConfig = errors.New("core: invalid game configuration")

// State is an immutable snapshot of a game. Advance and RequestDirection
// return new values; slices reachable from a State are never written after
// construction, and accessors hand out copies.
type State struct {
	size        int
	snake       []Coordinate // head at index 0
	reward      Coordinate
	direction   Direction
	growth      GrowthQueue
	phase       Phase
	acceptInput bool
	score       int
	tick        uint64
}

// Initialize builds the starting state: a horizontal snake of initialLength
// segments on row 0 with its head at the right end, facing right, and a
// reward placed at random off the snake. The game starts Idle.
func Initialize(size, initialLength int, rng Source) (State, error) {
	if size < 2 {
		return State{}, fmt.Errorf("%w: size %d, need at least 2", ErrInvalidConfig, size)
	}
	if initialLength < 1 || initialLength > size {
		return State{}, fmt.Errorf("%w: initial length %d must be within [1, %d]", ErrInvalidConfig, initialLength, size)
	}

	body := make([]Coordinate, initialLength)
	for i := range body {
		body[i] = Coordinate{Row: 0, Col: initialLength - 1 - i}
	}

	reward, err := PlaceReward(rng, size, body)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return State{
		size:        size,
		snake:       body,
		reward:      reward,
		direction:   DirRight,
		phase:       PhaseIdle,
		acceptInput: true,
	}, nil
}

// Layout describes an explicit board arrangement. It is used to resume a
// game or to set up a known position.
type Layout struct {
	Size      int
	Snake     []Coordinate // head first
	Reward    Coordinate
	Direction Direction
	Growth    []Coordinate
	Phase     Phase
}

// FromLayout validates l and builds a State from it.
func FromLayout(l Layout) (State, error) {
	if l.Size < 2 {
		return State{}, fmt.Errorf("%w: size %d, need at least 2", ErrInvalidConfig, l.Size)
	}
	if len(l.Snake) == 0 {
		return State{}, fmt.Errorf("%w: empty snake", ErrInvalidConfig)
	}
	if len(l.Snake) >= l.Size*l.Size {
		return State{}, fmt.Errorf("%w: snake of %d covers the board", ErrInvalidConfig, len(l.Snake))
	}
	for i, c := range l.Snake {
		if !c.InBounds(l.Size) {
			return State{}, fmt.Errorf("%w: segment %d at %v is off the board", ErrInvalidConfig, i, c)
		}
		if contains(l.Snake[:i], c) {
			return State{}, fmt.Errorf("%w: segment %d at %v overlaps the body", ErrInvalidConfig, i, c)
		}
	}
	if !l.Reward.InBounds(l.Size) || contains(l.Snake, l.Reward) {
		return State{}, fmt.Errorf("%w: reward at %v is not a free cell", ErrInvalidConfig, l.Reward)
	}
	if !l.Direction.Valid() {
		return State{}, fmt.Errorf("%w: direction %d", ErrInvalidConfig, l.Direction)
	}

	return State{
		size:        l.Size,
		snake:       append([]Coordinate(nil), l.Snake...),
		reward:      l.Reward,
		direction:   l.Direction,
		growth:      NewGrowthQueue(l.Growth...),
		phase:       l.Phase,
		acceptInput: true,
	}, nil
}

// Start moves an Idle game to Running. It is a no-op in any other phase;
// there is no way back to Idle other than building a new State.
func Start(s State) State {
	if s.phase != PhaseIdle {
		return s
	}
	s.phase = PhaseRunning
	s.acceptInput = true
	return s
}

// Size returns the board dimension.
func (s State) Size() int { return s.size }

// Snake returns a copy of the body, head first.
func (s State) Snake() []Coordinate {
	return append([]Coordinate(nil), s.snake...)
}

// Len returns the number of segments.
func (s State) Len() int { return len(s.snake) }

// Head returns the head cell.
func (s State) Head() Coordinate { return s.snake[0] }

// Tail returns the last segment.
func (s State) Tail() Coordinate { return s.snake[len(s.snake)-1] }

// Reward returns the reward cell.
func (s State) Reward() Coordinate { return s.reward }

// Direction returns the direction the snake moves on the next tick.
func (s State) Direction() Direction { return s.direction }

// Growth returns the pending growth markers.
func (s State) Growth() GrowthQueue { return s.growth }

// Phase returns the lifecycle stage.
func (s State) Phase() Phase { return s.phase }

// Running reports whether ticks and direction changes are being accepted.
func (s State) Running() bool { return s.phase == PhaseRunning }

// AcceptInput reports whether a direction change may still be admitted
// before the next tick.
func (s State) AcceptInput() bool { return s.acceptInput }

// Score returns the number of rewards eaten.
func (s State) Score() int { return s.score }

// Tick returns the number of ticks advanced.
func (s State) Tick() uint64 { return s.tick }

// Occupies reports whether any segment is on c.
func (s State) Occupies(c Coordinate) bool {
	return contains(s.snake, c)
}

// Layout returns the arrangement of s, suitable for FromLayout.
func (s State) Layout() Layout {
	return Layout{
		Size:      s.size,
		Snake:     s.Snake(),
		Reward:    s.reward,
		Direction: s.direction,
		Growth:    s.growth.Markers(),
		Phase:     s.phase,
	}
}
