package core

import "errors"

// ErrBoardFull is returned when there is no free cell left for a reward.
// Normal play never reaches it; callers treat it as fatal and halt the game.
var ErrBoardFull = errors.New("core: no free cell for reward")

// maxRejections bounds rejection sampling before falling back to a scan of
// the free cells. Both paths draw uniformly over the free cells.
const maxRejections = 1024

// Source is the randomness PlaceReward draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// PlaceReward picks a uniformly random cell of the size×size board that is
// not in occupied, using rejection sampling.
// Returns ErrBoardFull if occupied covers the whole board.
func PlaceReward(rng Source, size int, occupied []Coordinate) (Coordinate, error) {
	taken := make(map[Coordinate]struct{}, len(occupied))
	for _, c := range occupied {
		if c.InBounds(size) {
			taken[c] = struct{}{}
		}
	}
	if size <= 0 || len(taken) >= size*size {
		return Coordinate{}, ErrBoardFull
	}

	for i := 0; i < maxRejections; i++ {
		c := Coordinate{Row: rng.Intn(size), Col: rng.Intn(size)}
		if _, ok := taken[c]; !ok {
			return c, nil
		}
	}

	// Nearly full board: pick among the remaining cells directly.
	free := make([]Coordinate, 0, size*size-len(taken))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := Coordinate{Row: row, Col: col}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free[rng.Intn(len(free))], nil
}
