package core

import (
	"errors"
	"fmt"
)

var (
	// ErrCollision is wrapped by every *CollisionError.
	ErrCollision = errors.New("core: collision")

	// ErrNotRunning is returned by Advance outside the Running phase.
	ErrNotRunning = errors.New("core: game is not running")
)

// CollisionKind tells what the head ran into.
type CollisionKind uint8

const (
	CollisionOutOfBounds CollisionKind = iota + 1
	CollisionSelf
)

// String returns the string representation of a collision kind.
func (k CollisionKind) String() string {
	switch k {
	case CollisionOutOfBounds:
		return "out of bounds"
	case CollisionSelf:
		return "self collision"
	default:
		return "unknown"
	}
}

// CollisionError reports the terminal move that ended the game.
type CollisionError struct {
	Kind CollisionKind
	At   Coordinate // where the head would have gone
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("core: %s at %v", e.Kind, e.At)
}

func (e *CollisionError) Unwrap() error { return ErrCollision }

// Advance performs one tick on a Running game and returns the next state.
//
// Tick rules:
//  1. The head moves one cell in the current direction.
//  2. Leaving the board or entering the body ends the game. The tail cell is
//     legal because the tail vacates it this tick, unless the tail is held
//     back by a growth marker.
//  3. Every other segment takes its predecessor's cell.
//  4. If a growth marker sits on the old tail cell it is settled and the old
//     tail cell is kept as an extra segment.
//  5. Reaching the reward queues a growth marker on it, bumps the score and
//     places a new reward off the moved snake.
//
// On collision the returned state is the input moved to PhaseGameOver with
// snake, reward and growth untouched, and the error is a *CollisionError.
// If no free cell is left for a new reward the game is also over and
// ErrBoardFull is returned. rng is only consulted when a reward is eaten.
func Advance(s State, rng Source) (State, error) {
	if s.phase != PhaseRunning {
		return s, ErrNotRunning
	}

	oldTail := s.snake[len(s.snake)-1]
	head := Move(s.snake[0], s.direction)

	if !head.InBounds(s.size) {
		return gameOver(s), &CollisionError{Kind: CollisionOutOfBounds, At: head}
	}

	end := len(s.snake) - 1 // the tail moves away
	if s.growth.Pending(oldTail) {
		end = len(s.snake)
	}
	if end > 1 && contains(s.snake[1:end], head) {
		return gameOver(s), &CollisionError{Kind: CollisionSelf, At: head}
	}

	body := make([]Coordinate, 0, len(s.snake)+1)
	body = append(body, head)
	body = append(body, s.snake[:len(s.snake)-1]...)

	growth, grow := s.growth.Settle(oldTail)
	if grow {
		body = append(body, oldTail)
	}

	next := s
	next.snake = body
	next.growth = growth
	next.tick++

	if head == s.reward {
		next.growth = next.growth.Enqueue(s.reward)
		next.score++
		reward, err := PlaceReward(rng, s.size, body)
		if err != nil {
			return gameOver(next), err
		}
		next.reward = reward
	}

	next.acceptInput = true
	return next, nil
}

// gameOver stops s without touching the board.
func gameOver(s State) State {
	s.phase = PhaseGameOver
	s.acceptInput = false
	return s
}
